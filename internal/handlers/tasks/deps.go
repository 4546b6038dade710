package tasks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studymate/internal/models"
	"studymate/internal/ws"
)

// TaskStore is satisfied by *store.TaskStore; tests substitute a fake.
type TaskStore interface {
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	Get(ctx context.Context, userID, id int64) (*models.Task, error)
	List(ctx context.Context, userID int64, status, subject string) ([]models.Task, error)
	Update(ctx context.Context, t *models.Task) (*models.Task, error)
	SetStatus(ctx context.Context, userID, id int64, status string) (*models.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}

// Notifier pushes events to the owner's live websocket connections.
// A nil Notifier disables pushes.
type Notifier interface {
	Notify(userID int64, event ws.Event)
}

type TaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Subject     string  `json:"subject,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Status      string  `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"` // RFC 3339
}

var validPriorities = map[string]bool{"low": true, "medium": true, "high": true}

var validStatuses = map[string]bool{
	models.TaskStatusPending:    true,
	models.TaskStatusInProgress: true,
	models.TaskStatusCompleted:  true,
}

// toTask validates the payload and builds the model, applying defaults for
// priority (medium) and status (pending).
func (req *TaskRequest) toTask(userID int64) (*models.Task, []string) {
	var errs []string
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "title is required")
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	if !validPriorities[priority] {
		errs = append(errs, "priority must be one of: low, medium, high")
	}
	status := req.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	if !validStatuses[status] {
		errs = append(errs, "status must be one of: pending, in-progress, completed")
	}
	var due *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			errs = append(errs, fmt.Sprintf("due_date must be RFC 3339: %q", *req.DueDate))
		} else {
			due = &parsed
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &models.Task{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Subject:     req.Subject,
		Priority:    priority,
		Status:      status,
		DueDate:     due,
	}, nil
}
