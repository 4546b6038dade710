package store

import (
	"context"
	"database/sql"
	"fmt"

	"studymate/internal/models"
)

type TimetableStore struct {
	DB *sql.DB
}

func NewTimetableStore(db *sql.DB) *TimetableStore {
	return &TimetableStore{DB: db}
}

const timetableColumns = "id, user_id, day_of_week, subject, start_time, end_time, location, created_at, updated_at"

func (s *TimetableStore) Create(ctx context.Context, e *models.TimetableEntry) (*models.TimetableEntry, error) {
	result, err := s.DB.ExecContext(ctx,
		"INSERT INTO timetable_entries (user_id, day_of_week, subject, start_time, end_time, location) VALUES (?, ?, ?, ?, ?, ?)",
		e.UserID, e.DayOfWeek, e.Subject, e.StartTime, e.EndTime, e.Location,
	)
	if err != nil {
		return nil, fmt.Errorf("insert timetable entry: %w", err)
	}
	id, _ := result.LastInsertId()
	return s.Get(ctx, e.UserID, id)
}

func (s *TimetableStore) Get(ctx context.Context, userID, id int64) (*models.TimetableEntry, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+timetableColumns+" FROM timetable_entries WHERE id = ? AND user_id = ?", id, userID)
	return scanTimetableEntry(row)
}

// List orders entries monday through sunday, then by start time.
func (s *TimetableStore) List(ctx context.Context, userID int64) ([]models.TimetableEntry, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT "+timetableColumns+` FROM timetable_entries WHERE user_id = ?
		 ORDER BY FIELD(day_of_week, 'monday','tuesday','wednesday','thursday','friday','saturday','sunday'), start_time`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("select timetable: %w", err)
	}
	defer rows.Close()

	entries := []models.TimetableEntry{}
	for rows.Next() {
		e, err := scanTimetableEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (s *TimetableStore) Update(ctx context.Context, e *models.TimetableEntry) (*models.TimetableEntry, error) {
	result, err := s.DB.ExecContext(ctx,
		"UPDATE timetable_entries SET day_of_week = ?, subject = ?, start_time = ?, end_time = ?, location = ? WHERE id = ? AND user_id = ?",
		e.DayOfWeek, e.Subject, e.StartTime, e.EndTime, e.Location, e.ID, e.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("update timetable entry: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		if _, err := s.Get(ctx, e.UserID, e.ID); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, e.UserID, e.ID)
}

func (s *TimetableStore) Delete(ctx context.Context, userID, id int64) error {
	result, err := s.DB.ExecContext(ctx,
		"DELETE FROM timetable_entries WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete timetable entry: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTimetableEntry(row rowScanner) (*models.TimetableEntry, error) {
	var e models.TimetableEntry
	var location sql.NullString
	err := row.Scan(&e.ID, &e.UserID, &e.DayOfWeek, &e.Subject,
		&e.StartTime, &e.EndTime, &location, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan timetable entry: %w", err)
	}
	e.Location = location.String
	return &e, nil
}
