package models

import "time"

type TimetableEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	DayOfWeek string    `json:"day_of_week"` // monday .. sunday
	Subject   string    `json:"subject"`
	StartTime string    `json:"start_time"` // HH:MM
	EndTime   string    `json:"end_time"`   // HH:MM
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
