package sessions

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type ListHandler struct {
	Sessions SessionStore
	Log      *logrus.Logger
}

// ServeHTTP handles GET /sessions
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	sessions, err := h.Sessions.List(r.Context(), user.ID)
	if err != nil {
		h.Log.WithError(err).Error("sessions: failed to list sessions")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: sessions})
}
