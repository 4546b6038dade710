package reminders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/store"
	"studymate/internal/utils"
)

type UpdateHandler struct {
	Reminders ReminderStore
	Log       *logrus.Logger
}

// ServeHTTP handles PUT /reminders/{id}. Updates may keep a remind_at in
// the past (marking an old reminder as sent, for example).
func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reminder, errs := req.toReminder(user.ID, false)
	if errs != nil {
		utils.FailValidation(w, errs)
		return
	}
	reminder.ID = id

	updated, err := h.Reminders.Update(r.Context(), reminder)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(w, http.StatusNotFound, "reminder not found")
			return
		}
		h.Log.WithError(err).Error("reminders: failed to update reminder")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "reminder updated",
		Data:    updated,
	})
}
