package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"studymate/internal/models"
)

// ErrSessionClosed is returned when ending a session that already ended.
var ErrSessionClosed = errors.New("session already ended")

type SessionStore struct {
	DB *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{DB: db}
}

const sessionColumns = "id, user_id, subject, topic, started_at, ended_at, duration_minutes, created_at"

// Start opens a new study session stamped with the current time.
func (s *SessionStore) Start(ctx context.Context, userID int64, subject, topic string) (*models.StudySession, error) {
	result, err := s.DB.ExecContext(ctx,
		"INSERT INTO study_sessions (user_id, subject, topic, started_at, duration_minutes) VALUES (?, ?, ?, ?, 0)",
		userID, subject, topic, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	id, _ := result.LastInsertId()
	return s.Get(ctx, userID, id)
}

// End closes an open session and derives its duration in minutes.
func (s *SessionStore) End(ctx context.Context, userID, id int64) (*models.StudySession, error) {
	session, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if session.EndedAt != nil {
		return nil, ErrSessionClosed
	}
	now := time.Now()
	duration := models.DurationBetween(session.StartedAt, now)
	_, err = s.DB.ExecContext(ctx,
		"UPDATE study_sessions SET ended_at = ?, duration_minutes = ? WHERE id = ? AND user_id = ?",
		now, duration, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("end session: %w", err)
	}
	return s.Get(ctx, userID, id)
}

func (s *SessionStore) Get(ctx context.Context, userID, id int64) (*models.StudySession, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM study_sessions WHERE id = ? AND user_id = ?", id, userID)
	return scanSession(row)
}

func (s *SessionStore) List(ctx context.Context, userID int64) ([]models.StudySession, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM study_sessions WHERE user_id = ? ORDER BY started_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.StudySession{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}

func (s *SessionStore) Delete(ctx context.Context, userID, id int64) error {
	result, err := s.DB.ExecContext(ctx,
		"DELETE FROM study_sessions WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSession(row rowScanner) (*models.StudySession, error) {
	var sess models.StudySession
	var topic sql.NullString
	err := row.Scan(&sess.ID, &sess.UserID, &sess.Subject, &topic,
		&sess.StartedAt, &sess.EndedAt, &sess.DurationMinutes, &sess.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	sess.Topic = topic.String
	return &sess, nil
}
