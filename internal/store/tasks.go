package store

import (
	"context"
	"database/sql"
	"fmt"

	"studymate/internal/models"
)

// TaskStore persists tasks. Every query is scoped to the owning user id, so
// a task belonging to another user is indistinguishable from a missing one.
type TaskStore struct {
	DB *sql.DB
}

func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{DB: db}
}

const taskColumns = "id, user_id, title, description, subject, priority, status, due_date, created_at, updated_at"

func (s *TaskStore) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	result, err := s.DB.ExecContext(ctx,
		"INSERT INTO tasks (user_id, title, description, subject, priority, status, due_date) VALUES (?, ?, ?, ?, ?, ?, ?)",
		t.UserID, t.Title, t.Description, t.Subject, t.Priority, t.Status, t.DueDate,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, _ := result.LastInsertId()
	return s.Get(ctx, t.UserID, id)
}

func (s *TaskStore) Get(ctx context.Context, userID, id int64) (*models.Task, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	return scanTask(row)
}

// List returns the user's tasks, optionally filtered by status and subject.
func (s *TaskStore) List(ctx context.Context, userID int64, status, subject string) ([]models.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE user_id = ?"
	args := []interface{}{userID}
	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	if subject != "" {
		query += " AND subject = ?"
		args = append(args, subject)
	}
	query += " ORDER BY due_date IS NULL, due_date, id"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (s *TaskStore) Update(ctx context.Context, t *models.Task) (*models.Task, error) {
	result, err := s.DB.ExecContext(ctx,
		"UPDATE tasks SET title = ?, description = ?, subject = ?, priority = ?, status = ?, due_date = ? WHERE id = ? AND user_id = ?",
		t.Title, t.Description, t.Subject, t.Priority, t.Status, t.DueDate, t.ID, t.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		// distinguish "no change" from "no row"
		if _, err := s.Get(ctx, t.UserID, t.ID); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, t.UserID, t.ID)
}

func (s *TaskStore) SetStatus(ctx context.Context, userID, id int64, status string) (*models.Task, error) {
	result, err := s.DB.ExecContext(ctx,
		"UPDATE tasks SET status = ? WHERE id = ? AND user_id = ?", status, id, userID)
	if err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		if _, err := s.Get(ctx, userID, id); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, userID, id)
}

func (s *TaskStore) Delete(ctx context.Context, userID, id int64) error {
	result, err := s.DB.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var t models.Task
	var description, subject sql.NullString
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &description, &subject,
		&t.Priority, &t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}
	t.Description = description.String
	t.Subject = subject.String
	return &t, nil
}
