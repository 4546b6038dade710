package progress

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type ListHandler struct {
	Progress ProgressStore
	Log      *logrus.Logger
}

// ServeHTTP handles GET /progress
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	records, err := h.Progress.List(r.Context(), user.ID)
	if err != nil {
		h.Log.WithError(err).Error("progress: failed to list records")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: records})
}
