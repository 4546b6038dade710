package subjects

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type ListHandler struct {
	Subjects SubjectStore
	Log      *logrus.Logger
}

// ServeHTTP handles GET /subjects
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	subjects, err := h.Subjects.List(r.Context(), user.ID)
	if err != nil {
		h.Log.WithError(err).Error("subjects: failed to list subjects")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: subjects})
}
