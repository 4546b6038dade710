package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/store"
	"studymate/internal/utils"
)

// One message for every login failure: unknown email, wrong password, and
// deactivated account must be indistinguishable to the caller.
const msgInvalidCredentials = "invalid email or password"

type LoginHandler struct {
	Users  UserStore
	Tokens TokenIssuer
	Log    *logrus.Logger
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /auth/login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.Fail(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.Users.GetByEmail(r.Context(), req.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.Log.WithError(err).Error("login: failed to look up user")
		utils.ServerError(w)
		return
	}
	if err != nil || !user.IsActive || !h.Users.VerifyPassword(user, req.Password) {
		utils.Fail(w, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := h.Users.TouchLastLogin(r.Context(), user.ID); err != nil {
		h.Log.WithError(err).Warn("login: failed to update last login")
	}

	tokenStr, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.Log.WithError(err).Error("login: failed to issue token")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "login successful",
		Data: map[string]interface{}{
			"user":  user,
			"token": tokenStr,
		},
	})
}
