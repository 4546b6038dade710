package models

import "time"

type Reminder struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	RemindAt  time.Time `json:"remind_at"`
	Repeat    string    `json:"repeat"` // none | daily | weekly
	Sent      bool      `json:"sent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
