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

type UpdateHandler struct {
	Subjects SubjectStore
	Log      *logrus.Logger
}

// ServeHTTP handles PUT /subjects/{id}
func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := utils.ParseID(r, "id")
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "invalid subject id")
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
	subject.ID = id
	if subject.Status == "" {
		subject.Status = "active"
	}

	updated, err := h.Subjects.Update(r.Context(), user.ID, subject)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.Fail(w, http.StatusNotFound, "subject not found")
		case errors.Is(err, store.ErrDuplicateSubject):
			utils.Fail(w, http.StatusBadRequest, "subject already exists")
		default:
			h.Log.WithError(err).Error("subjects: failed to update subject")
			utils.ServerError(w)
		}
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "subject updated",
		Data:    updated,
	})
}
