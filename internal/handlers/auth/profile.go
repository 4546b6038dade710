package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/store"
	"studymate/internal/utils"
)

type ProfileHandler struct {
	Users UserStore
	Log   *logrus.Logger
}

type ProfileRequest struct {
	Name     *string        `json:"name,omitempty"`
	Class    *string        `json:"class,omitempty"`
	Subjects []SubjectInput `json:"subjects,omitempty"`
}

// ServeHTTP handles PUT /auth/profile. Email and password are not mutable
// through this route.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var errs []string
	if req.Name != nil && !utils.ValidName(*req.Name) {
		errs = append(errs, "name must be 2-50 characters, letters and spaces only")
	}
	if req.Class != nil && (*req.Class == "" || len(*req.Class) > utils.MaxClassLength) {
		errs = append(errs, fmt.Sprintf("class must be 1-%d characters", utils.MaxClassLength))
	}
	for _, sub := range req.Subjects {
		if sub.Name == "" {
			errs = append(errs, "subject name is required")
			break
		}
	}
	if len(errs) > 0 {
		utils.FailValidation(w, errs)
		return
	}

	updated, err := h.Users.UpdateProfile(r.Context(), user.ID, store.ProfileUpdate{
		Name:     req.Name,
		Class:    req.Class,
		Subjects: toSubjects(req.Subjects),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSubject) {
			utils.Fail(w, http.StatusBadRequest, "duplicate subject name")
			return
		}
		h.Log.WithError(err).Error("profile: failed to update user")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "profile updated",
		Data:    map[string]interface{}{"user": updated},
	})
}
