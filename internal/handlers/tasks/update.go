package tasks

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/store"
	"studymate/internal/utils"
)

type UpdateHandler struct {
	Tasks TaskStore
	Log   *logrus.Logger
}

// ServeHTTP handles PUT /tasks/{id}
func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	task, errs := req.toTask(user.ID)
	if errs != nil {
		utils.FailValidation(w, errs)
		return
	}
	task.ID = id

	updated, err := h.Tasks.Update(r.Context(), task)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(w, http.StatusNotFound, "task not found")
			return
		}
		h.Log.WithError(err).Error("tasks: failed to update task")
		utils.ServerError(w)
		return
	}
	updated.ComputeOverdue(time.Now())

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "task updated",
		Data:    updated,
	})
}
