package progress

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/models"
	"studymate/internal/utils"
)

type UpsertHandler struct {
	Progress ProgressStore
	Log      *logrus.Logger
}

type UpsertRequest struct {
	Date           string `json:"date"` // YYYY-MM-DD, defaults to today
	StudyMinutes   int    `json:"study_minutes"`
	TasksCompleted int    `json:"tasks_completed"`
	Notes          string `json:"notes,omitempty"`
}

// ServeHTTP handles POST /progress. One record per user per day; posting
// again for the same day replaces it.
func (h *UpsertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var errs []string
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if req.StudyMinutes < 0 {
		errs = append(errs, "study_minutes must not be negative")
	}
	if req.TasksCompleted < 0 {
		errs = append(errs, "tasks_completed must not be negative")
	}
	if len(errs) > 0 {
		utils.FailValidation(w, errs)
		return
	}

	record, err := h.Progress.Upsert(r.Context(), &models.ProgressRecord{
		UserID:         user.ID,
		Date:           date,
		StudyMinutes:   req.StudyMinutes,
		TasksCompleted: req.TasksCompleted,
		Notes:          req.Notes,
	})
	if err != nil {
		h.Log.WithError(err).Error("progress: failed to upsert record")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "progress recorded",
		Data:    record,
	})
}
