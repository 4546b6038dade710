package store

import (
	"context"
	"database/sql"
	"fmt"

	mysql "github.com/go-sql-driver/mysql"

	"studymate/internal/models"
)

// SubjectStore exposes a user's subject list as its own resource. It works
// on the same rows UserStore.UpdateProfile replaces wholesale.
type SubjectStore struct {
	DB *sql.DB
}

func NewSubjectStore(db *sql.DB) *SubjectStore {
	return &SubjectStore{DB: db}
}

func (s *SubjectStore) List(ctx context.Context, userID int64) ([]models.Subject, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, name, assignments, status, position FROM subjects WHERE user_id = ? ORDER BY position", userID)
	if err != nil {
		return nil, fmt.Errorf("select subjects: %w", err)
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		var sub models.Subject
		var assignments sql.NullString
		if err := rows.Scan(&sub.ID, &sub.Name, &assignments, &sub.Status, &sub.Position); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		sub.Assignments = decodeAssignments(assignments)
		subjects = append(subjects, sub)
	}
	return subjects, rows.Err()
}

func (s *SubjectStore) Get(ctx context.Context, userID, id int64) (*models.Subject, error) {
	var sub models.Subject
	var assignments sql.NullString
	err := s.DB.QueryRowContext(ctx,
		"SELECT id, name, assignments, status, position FROM subjects WHERE id = ? AND user_id = ?",
		id, userID,
	).Scan(&sub.ID, &sub.Name, &assignments, &sub.Status, &sub.Position)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select subject: %w", err)
	}
	sub.Assignments = decodeAssignments(assignments)
	return &sub, nil
}

// Add appends a subject; the (user_id, name) unique key catches duplicates
// case-insensitively through the column collation.
func (s *SubjectStore) Add(ctx context.Context, userID int64, sub *models.Subject) (*models.Subject, error) {
	status := sub.Status
	if status == "" {
		status = "active"
	}
	assignments, err := encodeAssignments(sub.Assignments)
	if err != nil {
		return nil, err
	}
	result, err := s.DB.ExecContext(ctx,
		`INSERT INTO subjects (user_id, name, assignments, status, position)
		 SELECT ?, ?, ?, ?, COALESCE(MAX(position) + 1, 0) FROM subjects WHERE user_id = ?`,
		userID, sub.Name, assignments, status, userID,
	)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == mysqlDuplicateEntry {
			return nil, ErrDuplicateSubject
		}
		return nil, fmt.Errorf("insert subject: %w", err)
	}
	id, _ := result.LastInsertId()
	return s.Get(ctx, userID, id)
}

func (s *SubjectStore) Update(ctx context.Context, userID int64, sub *models.Subject) (*models.Subject, error) {
	assignments, err := encodeAssignments(sub.Assignments)
	if err != nil {
		return nil, err
	}
	result, err := s.DB.ExecContext(ctx,
		"UPDATE subjects SET name = ?, assignments = ?, status = ? WHERE id = ? AND user_id = ?",
		sub.Name, assignments, sub.Status, sub.ID, userID,
	)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == mysqlDuplicateEntry {
			return nil, ErrDuplicateSubject
		}
		return nil, fmt.Errorf("update subject: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		if _, err := s.Get(ctx, userID, sub.ID); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, userID, sub.ID)
}

func (s *SubjectStore) Delete(ctx context.Context, userID, id int64) error {
	result, err := s.DB.ExecContext(ctx, "DELETE FROM subjects WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
