package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/store"
	"studymate/internal/utils"
)

type RegisterHandler struct {
	Users  UserStore
	Tokens TokenIssuer
	Log    *logrus.Logger
}

type RegisterRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Class    string         `json:"class"`
	Subjects []SubjectInput `json:"subjects,omitempty"`
}

// ServeHTTP handles POST /auth/register
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	errs := utils.ValidateRegistration(req.Name, req.Email, req.Password, req.Class)
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

	user, err := h.Users.Create(r.Context(), req.Name, req.Email, req.Password, req.Class, toSubjects(req.Subjects))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			utils.Fail(w, http.StatusBadRequest, "email already registered")
		case errors.Is(err, store.ErrDuplicateSubject):
			utils.Fail(w, http.StatusBadRequest, "duplicate subject name")
		default:
			h.Log.WithError(err).Error("register: failed to create user")
			utils.ServerError(w)
		}
		return
	}

	tokenStr, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.Log.WithError(err).Error("register: failed to issue token")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "registration successful",
		Data: map[string]interface{}{
			"user":  user,
			"token": tokenStr,
		},
	})
}
