package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"studymate/internal/models"
)

type ProgressStore struct {
	DB *sql.DB
}

func NewProgressStore(db *sql.DB) *ProgressStore {
	return &ProgressStore{DB: db}
}

// record_date is formatted in SQL so it scans as a string even with
// parseTime=true in the DSN.
const progressColumns = "id, user_id, DATE_FORMAT(record_date, '%Y-%m-%d'), study_minutes, tasks_completed, notes, created_at, updated_at"

// Upsert writes the user's record for one calendar day, replacing any
// existing record for that day.
func (s *ProgressStore) Upsert(ctx context.Context, r *models.ProgressRecord) (*models.ProgressRecord, error) {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO progress_records (user_id, record_date, study_minutes, tasks_completed, notes)
		 VALUES (?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE study_minutes = VALUES(study_minutes),
		 tasks_completed = VALUES(tasks_completed), notes = VALUES(notes)`,
		r.UserID, r.Date, r.StudyMinutes, r.TasksCompleted, r.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}
	return s.GetByDate(ctx, r.UserID, r.Date)
}

func (s *ProgressStore) GetByDate(ctx context.Context, userID int64, date string) (*models.ProgressRecord, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+progressColumns+" FROM progress_records WHERE user_id = ? AND record_date = ?", userID, date)
	return scanProgress(row)
}

func (s *ProgressStore) List(ctx context.Context, userID int64) ([]models.ProgressRecord, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT "+progressColumns+" FROM progress_records WHERE user_id = ? ORDER BY record_date DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("select progress: %w", err)
	}
	defer rows.Close()

	records := []models.ProgressRecord{}
	for rows.Next() {
		r, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

// Weekly aggregates the last seven days (today inclusive) into per-day rows
// plus totals. Days without a record are absent from Days.
func (s *ProgressStore) Weekly(ctx context.Context, userID int64, now time.Time) (*models.WeeklyProgress, error) {
	since := now.AddDate(0, 0, -6).Format("2006-01-02")
	rows, err := s.DB.QueryContext(ctx,
		`SELECT DATE_FORMAT(record_date, '%Y-%m-%d'), study_minutes, tasks_completed FROM progress_records
		 WHERE user_id = ? AND record_date >= ? ORDER BY record_date`,
		userID, since)
	if err != nil {
		return nil, fmt.Errorf("select weekly progress: %w", err)
	}
	defer rows.Close()

	out := &models.WeeklyProgress{Days: []models.WeeklyProgressDay{}}
	for rows.Next() {
		var d models.WeeklyProgressDay
		if err := rows.Scan(&d.Date, &d.StudyMinutes, &d.TasksCompleted); err != nil {
			return nil, fmt.Errorf("scan weekly progress: %w", err)
		}
		out.TotalMinutes += d.StudyMinutes
		out.TotalTasksCompleted += d.TasksCompleted
		out.Days = append(out.Days, d)
	}
	return out, rows.Err()
}

func scanProgress(row rowScanner) (*models.ProgressRecord, error) {
	var r models.ProgressRecord
	var notes sql.NullString
	err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.StudyMinutes,
		&r.TasksCompleted, &notes, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan progress: %w", err)
	}
	r.Notes = notes.String
	return &r, nil
}
