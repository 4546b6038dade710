package reminders

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
	"studymate/internal/ws"
)

type CreateHandler struct {
	Reminders ReminderStore
	Hub       Notifier
	Log       *logrus.Logger
}

// ServeHTTP handles POST /reminders
func (h *CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reminder, errs := req.toReminder(user.ID, true)
	if errs != nil {
		utils.FailValidation(w, errs)
		return
	}

	created, err := h.Reminders.Create(r.Context(), reminder)
	if err != nil {
		h.Log.WithError(err).Error("reminders: failed to create reminder")
		utils.ServerError(w)
		return
	}

	if h.Hub != nil {
		h.Hub.Notify(user.ID, ws.Event{Type: "reminder_created", Data: created})
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "reminder created",
		Data:    created,
	})
}
