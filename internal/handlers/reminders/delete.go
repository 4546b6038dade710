package reminders

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/store"
	"studymate/internal/utils"
)

type DeleteHandler struct {
	Reminders ReminderStore
	Log       *logrus.Logger
}

// ServeHTTP handles DELETE /reminders/{id}
func (h *DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Reminders.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(w, http.StatusNotFound, "reminder not found")
			return
		}
		h.Log.WithError(err).Error("reminders: failed to delete reminder")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "reminder deleted"})
}
