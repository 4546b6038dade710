package progress

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type WeeklyHandler struct {
	Progress ProgressStore
	Log      *logrus.Logger
}

// ServeHTTP handles GET /progress/weekly — totals and per-day rows for the
// last seven days, today inclusive.
func (h *WeeklyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	summary, err := h.Progress.Weekly(r.Context(), user.ID, time.Now())
	if err != nil {
		h.Log.WithError(err).Error("progress: failed to build weekly summary")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: summary})
}
