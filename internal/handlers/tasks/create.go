package tasks

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type CreateHandler struct {
	Tasks TaskStore
	Log   *logrus.Logger
}

// ServeHTTP handles POST /tasks
func (h *CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
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

	created, err := h.Tasks.Create(r.Context(), task)
	if err != nil {
		h.Log.WithError(err).Error("tasks: failed to create task")
		utils.ServerError(w)
		return
	}
	created.ComputeOverdue(time.Now())

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "task created",
		Data:    created,
	})
}
