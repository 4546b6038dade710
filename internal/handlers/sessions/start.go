package sessions

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type StartHandler struct {
	Sessions SessionStore
	Log      *logrus.Logger
}

type StartRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic,omitempty"`
}

// ServeHTTP handles POST /sessions/start
func (h *StartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Subject) == "" {
		utils.FailValidation(w, []string{"subject is required"})
		return
	}

	session, err := h.Sessions.Start(r.Context(), user.ID, strings.TrimSpace(req.Subject), req.Topic)
	if err != nil {
		h.Log.WithError(err).Error("sessions: failed to start session")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "study session started",
		Data:    session,
	})
}
