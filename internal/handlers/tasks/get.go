package tasks

import (
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/store"
	"studymate/internal/utils"
)

type GetHandler struct {
	Tasks TaskStore
	Log   *logrus.Logger
}

// ServeHTTP handles GET /tasks/{id}. A task owned by another user yields the
// same 404 as a missing one.
func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	task, err := h.Tasks.Get(r.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(w, http.StatusNotFound, "task not found")
			return
		}
		h.Log.WithError(err).Error("tasks: failed to get task")
		utils.ServerError(w)
		return
	}
	task.ComputeOverdue(time.Now())

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: task})
}
