package auth

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type ChangePasswordHandler struct {
	Users UserStore
	Log   *logrus.Logger
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ServeHTTP handles POST /auth/change-password. The current password is
// re-verified before the new one is accepted.
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.NewPassword) < utils.MinPasswordLength {
		utils.FailValidation(w, []string{
			fmt.Sprintf("new password must be at least %d characters", utils.MinPasswordLength),
		})
		return
	}

	if !h.Users.VerifyPassword(user, req.CurrentPassword) {
		utils.Fail(w, http.StatusBadRequest, "current password is incorrect")
		return
	}

	if err := h.Users.ChangePassword(r.Context(), user.ID, req.NewPassword); err != nil {
		h.Log.WithError(err).Error("change-password: failed to update hash")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "password changed",
	})
}
