package store

import (
	"context"
	"database/sql"
	"fmt"

	"studymate/internal/models"
)

type ReminderStore struct {
	DB *sql.DB
}

func NewReminderStore(db *sql.DB) *ReminderStore {
	return &ReminderStore{DB: db}
}

const reminderColumns = "id, user_id, title, message, remind_at, repeat_interval, sent, created_at, updated_at"

func (s *ReminderStore) Create(ctx context.Context, r *models.Reminder) (*models.Reminder, error) {
	result, err := s.DB.ExecContext(ctx,
		"INSERT INTO reminders (user_id, title, message, remind_at, repeat_interval, sent) VALUES (?, ?, ?, ?, ?, ?)",
		r.UserID, r.Title, r.Message, r.RemindAt, r.Repeat, r.Sent,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reminder: %w", err)
	}
	id, _ := result.LastInsertId()
	return s.Get(ctx, r.UserID, id)
}

func (s *ReminderStore) Get(ctx context.Context, userID, id int64) (*models.Reminder, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE id = ? AND user_id = ?", id, userID)
	return scanReminder(row)
}

func (s *ReminderStore) List(ctx context.Context, userID int64) ([]models.Reminder, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE user_id = ? ORDER BY remind_at", userID)
	if err != nil {
		return nil, fmt.Errorf("select reminders: %w", err)
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, *r)
	}
	return reminders, rows.Err()
}

func (s *ReminderStore) Update(ctx context.Context, r *models.Reminder) (*models.Reminder, error) {
	result, err := s.DB.ExecContext(ctx,
		"UPDATE reminders SET title = ?, message = ?, remind_at = ?, repeat_interval = ?, sent = ? WHERE id = ? AND user_id = ?",
		r.Title, r.Message, r.RemindAt, r.Repeat, r.Sent, r.ID, r.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		if _, err := s.Get(ctx, r.UserID, r.ID); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, r.UserID, r.ID)
}

func (s *ReminderStore) Delete(ctx context.Context, userID, id int64) error {
	result, err := s.DB.ExecContext(ctx, "DELETE FROM reminders WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanReminder(row rowScanner) (*models.Reminder, error) {
	var r models.Reminder
	var message sql.NullString
	err := row.Scan(&r.ID, &r.UserID, &r.Title, &message, &r.RemindAt,
		&r.Repeat, &r.Sent, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan reminder: %w", err)
	}
	r.Message = message.String
	return &r, nil
}
