package reminders

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type ListHandler struct {
	Reminders ReminderStore
	Log       *logrus.Logger
}

// ServeHTTP handles GET /reminders
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	reminders, err := h.Reminders.List(r.Context(), user.ID)
	if err != nil {
		h.Log.WithError(err).Error("reminders: failed to list reminders")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: reminders})
}
