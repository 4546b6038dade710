package models

import "time"

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

type Task struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Subject     string     `json:"subject,omitempty"`
	Priority    string     `json:"priority"` // low | medium | high
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsOverdue   bool       `json:"is_overdue"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ComputeOverdue derives IsOverdue: a task is overdue once its due date has
// passed and it is not completed. Tasks without a due date are never overdue.
func (t *Task) ComputeOverdue(now time.Time) {
	t.IsOverdue = t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskStatusCompleted
}
