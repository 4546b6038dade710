package tasks

import (
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/models"
	"studymate/internal/store"
	"studymate/internal/utils"
	"studymate/internal/ws"
)

type CompleteHandler struct {
	Tasks TaskStore
	Hub   Notifier
	Log   *logrus.Logger
}

// ServeHTTP handles PATCH /tasks/{id}/complete
func (h *CompleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := utils.ParseID(r, "id")
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := h.Tasks.SetStatus(r.Context(), user.ID, id, models.TaskStatusCompleted)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(w, http.StatusNotFound, "task not found")
			return
		}
		h.Log.WithError(err).Error("tasks: failed to complete task")
		utils.ServerError(w)
		return
	}
	task.ComputeOverdue(time.Now())

	if h.Hub != nil {
		h.Hub.Notify(user.ID, ws.Event{Type: "task_completed", Data: task})
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "task completed",
		Data:    task,
	})
}
