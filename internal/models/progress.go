package models

import "time"

// ProgressRecord is one per user per calendar day.
type ProgressRecord struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"-"`
	Date           string    `json:"date"` // YYYY-MM-DD
	StudyMinutes   int       `json:"study_minutes"`
	TasksCompleted int       `json:"tasks_completed"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type WeeklyProgressDay struct {
	Date           string `json:"date"`
	StudyMinutes   int    `json:"study_minutes"`
	TasksCompleted int    `json:"tasks_completed"`
}

type WeeklyProgress struct {
	TotalMinutes        int                 `json:"total_minutes"`
	TotalTasksCompleted int                 `json:"total_tasks_completed"`
	Days                []WeeklyProgressDay `json:"days"`
}
