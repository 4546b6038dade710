package subjects

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/store"
	"studymate/internal/utils"
)

type AddHandler struct {
	Subjects SubjectStore
	Log      *logrus.Logger
}

// ServeHTTP handles POST /subjects. Subject names are unique per user,
// case-insensitively.
func (h *AddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req SubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	subject, errs := req.toSubject()
	if errs != nil {
		utils.FailValidation(w, errs)
		return
	}

	created, err := h.Subjects.Add(r.Context(), user.ID, subject)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSubject) {
			utils.Fail(w, http.StatusBadRequest, "subject already exists")
			return
		}
		h.Log.WithError(err).Error("subjects: failed to add subject")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "subject added",
		Data:    created,
	})
}
