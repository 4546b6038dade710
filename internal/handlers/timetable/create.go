package timetable

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type CreateHandler struct {
	Entries EntryStore
	Log     *logrus.Logger
}

// ServeHTTP handles POST /timetable
func (h *CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, errs := req.toEntry(user.ID)
	if errs != nil {
		utils.FailValidation(w, errs)
		return
	}

	created, err := h.Entries.Create(r.Context(), entry)
	if err != nil {
		h.Log.WithError(err).Error("timetable: failed to create entry")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "timetable entry created",
		Data:    created,
	})
}
