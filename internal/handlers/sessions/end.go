package sessions

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/store"
	"studymate/internal/utils"
	"studymate/internal/ws"
)

type EndHandler struct {
	Sessions SessionStore
	Hub      Notifier
	Log      *logrus.Logger
}

// ServeHTTP handles POST /sessions/{id}/end. Ending an already-ended
// session is a client error.
func (h *EndHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	session, err := h.Sessions.End(r.Context(), user.ID, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.Fail(w, http.StatusNotFound, "session not found")
		case errors.Is(err, store.ErrSessionClosed):
			utils.Fail(w, http.StatusBadRequest, "session already ended")
		default:
			h.Log.WithError(err).Error("sessions: failed to end session")
			utils.ServerError(w)
		}
		return
	}

	if h.Hub != nil {
		h.Hub.Notify(user.ID, ws.Event{Type: "session_ended", Data: session})
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "study session ended",
		Data:    session,
	})
}
