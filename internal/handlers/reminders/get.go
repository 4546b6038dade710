package reminders

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/store"
	"studymate/internal/utils"
)

type GetHandler struct {
	Reminders ReminderStore
	Log       *logrus.Logger
}

// ServeHTTP handles GET /reminders/{id}
func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := utils.ParseID(r, "id")
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "invalid reminder id")
		return
	}

	reminder, err := h.Reminders.Get(r.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(w, http.StatusNotFound, "reminder not found")
			return
		}
		h.Log.WithError(err).Error("reminders: failed to get reminder")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: reminder})
}
