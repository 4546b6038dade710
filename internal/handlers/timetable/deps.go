package timetable

import (
	"context"
	"strings"

	"studymate/internal/models"
	"studymate/internal/utils"
)

// EntryStore is satisfied by *store.TimetableStore.
type EntryStore interface {
	Create(ctx context.Context, e *models.TimetableEntry) (*models.TimetableEntry, error)
	Get(ctx context.Context, userID, id int64) (*models.TimetableEntry, error)
	List(ctx context.Context, userID int64) ([]models.TimetableEntry, error)
	Update(ctx context.Context, e *models.TimetableEntry) (*models.TimetableEntry, error)
	Delete(ctx context.Context, userID, id int64) error
}

type EntryRequest struct {
	DayOfWeek string `json:"day_of_week"`
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location,omitempty"`
}

func (req *EntryRequest) toEntry(userID int64) (*models.TimetableEntry, []string) {
	var errs []string
	day := strings.ToLower(strings.TrimSpace(req.DayOfWeek))
	if !utils.ValidDayOfWeek(day) {
		errs = append(errs, "day_of_week must be monday through sunday")
	}
	if strings.TrimSpace(req.Subject) == "" {
		errs = append(errs, "subject is required")
	}
	if !utils.ValidClockTime(req.StartTime) || !utils.ValidClockTime(req.EndTime) {
		errs = append(errs, "start_time and end_time must be HH:MM")
	} else if req.EndTime <= req.StartTime {
		errs = append(errs, "end_time must be after start_time")
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &models.TimetableEntry{
		UserID:    userID,
		DayOfWeek: day,
		Subject:   strings.TrimSpace(req.Subject),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	}, nil
}
