package sessions

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/store"
	"studymate/internal/utils"
)

type DeleteHandler struct {
	Sessions SessionStore
	Log      *logrus.Logger
}

// ServeHTTP handles DELETE /sessions/{id}
func (h *DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := utils.ParseID(r, "id")
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "invalid session id")
		return
	}

	if err := h.Sessions.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(w, http.StatusNotFound, "session not found")
			return
		}
		h.Log.WithError(err).Error("sessions: failed to delete session")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "session deleted"})
}
