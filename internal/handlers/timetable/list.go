package timetable

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"studymate/internal/middleware"
	"studymate/internal/utils"
)

type ListHandler struct {
	Entries EntryStore
	Log     *logrus.Logger
}

// ServeHTTP handles GET /timetable
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	entries, err := h.Entries.List(r.Context(), user.ID)
	if err != nil {
		h.Log.WithError(err).Error("timetable: failed to list entries")
		utils.ServerError(w)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: entries})
}
