package models

import "time"

// StudySession is a timed study block. DurationMinutes is derived when the
// session ends; an open session has EndedAt nil and a zero duration.
type StudySession struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"-"`
	Subject         string     `json:"subject"`
	Topic           string     `json:"topic,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
}

// DurationBetween computes whole minutes between start and end, rounding to
// the nearest minute and never going negative.
func DurationBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Round(time.Minute) / time.Minute)
}
