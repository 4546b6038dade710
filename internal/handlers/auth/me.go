package auth

import (
	"net/http"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type MeHandler struct{}

// ServeHTTP handles GET /auth/me
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Data:    map[string]interface{}{"user": user},
	})
}
