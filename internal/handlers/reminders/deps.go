package reminders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studymate/internal/models"
	"studymate/internal/ws"
)

// ReminderStore is satisfied by *store.ReminderStore.
type ReminderStore interface {
	Create(ctx context.Context, r *models.Reminder) (*models.Reminder, error)
	Get(ctx context.Context, userID, id int64) (*models.Reminder, error)
	List(ctx context.Context, userID int64) ([]models.Reminder, error)
	Update(ctx context.Context, r *models.Reminder) (*models.Reminder, error)
	Delete(ctx context.Context, userID, id int64) error
}

type Notifier interface {
	Notify(userID int64, event ws.Event)
}

type ReminderRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message,omitempty"`
	RemindAt string `json:"remind_at"` // RFC 3339
	Repeat   string `json:"repeat,omitempty"`
	Sent     bool   `json:"sent,omitempty"`
}

var validRepeats = map[string]bool{"none": true, "daily": true, "weekly": true}

// toReminder validates the payload. requireFuture is set on create: a new
// reminder must point at a moment that has not passed yet.
func (req *ReminderRequest) toReminder(userID int64, requireFuture bool) (*models.Reminder, []string) {
	var errs []string
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "title is required")
	}
	repeat := req.Repeat
	if repeat == "" {
		repeat = "none"
	}
	if !validRepeats[repeat] {
		errs = append(errs, "repeat must be one of: none, daily, weekly")
	}
	remindAt, err := time.Parse(time.RFC3339, req.RemindAt)
	if err != nil {
		errs = append(errs, fmt.Sprintf("remind_at must be RFC 3339: %q", req.RemindAt))
	} else if requireFuture && remindAt.Before(time.Now()) {
		errs = append(errs, "remind_at must be in the future")
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &models.Reminder{
		UserID:   userID,
		Title:    strings.TrimSpace(req.Title),
		Message:  req.Message,
		RemindAt: remindAt,
		Repeat:   repeat,
		Sent:     req.Sent,
	}, nil
}
