package tasks

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type ListHandler struct {
	Tasks TaskStore
	Log   *logrus.Logger
}

// ServeHTTP handles GET /tasks?status=&subject=
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && !validStatuses[status] {
		utils.Fail(w, http.StatusBadRequest, "status must be one of: pending, in-progress, completed")
		return
	}

	tasks, err := h.Tasks.List(r.Context(), user.ID, status, r.URL.Query().Get("subject"))
	if err != nil {
		h.Log.WithError(err).Error("tasks: failed to list tasks")
		utils.ServerError(w)
		return
	}
	now := time.Now()
	for i := range tasks {
		tasks[i].ComputeOverdue(now)
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: tasks})
}
