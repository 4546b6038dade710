package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	mysql "github.com/go-sql-driver/mysql"

	"studymate/internal/models"
	"studymate/internal/utils"
)

// UserStore is the credential store: it owns user identity rows and every
// password operation. Plaintext passwords are hashed on entry and never
// retained or logged.
type UserStore struct {
	DB *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{DB: db}
}

const mysqlDuplicateEntry = 1062

// Create registers a new user. The email is normalized before insert and a
// duplicate (case-insensitive) yields ErrDuplicateEmail.
func (s *UserStore) Create(ctx context.Context, name, email, password, class string, subjects []models.Subject) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	email = utils.NormalizeEmail(email)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, class, is_active) VALUES (?, ?, ?, ?, TRUE)",
		name, email, hash, class,
	)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == mysqlDuplicateEntry {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, _ := result.LastInsertId()

	if err := replaceSubjectsTx(ctx, tx, id, subjects); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByEmail looks a user up by normalized email. The email column carries a
// case-insensitive collation, so the lookup matches regardless of case.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "SELECT id, name, email, password_hash, class, is_active, last_login_at, created_at, updated_at FROM users WHERE email = ?", utils.NormalizeEmail(email))
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, "SELECT id, name, email, password_hash, class, is_active, last_login_at, created_at, updated_at FROM users WHERE id = ?", id)
}

func (s *UserStore) getUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var u models.User
	err := s.DB.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Class,
		&u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	subjects, err := s.loadSubjects(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Subjects = subjects
	return &u, nil
}

// VerifyPassword recomputes the bcrypt comparison against the stored hash.
func (s *UserStore) VerifyPassword(user *models.User, password string) bool {
	return utils.CheckPassword(password, user.PasswordHash)
}

// ChangePassword re-derives and replaces the stored hash.
func (s *UserStore) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx, "UPDATE users SET password_hash = ? WHERE id = ?", hash, userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".
// Email and password are never mutated through this path.
type ProfileUpdate struct {
	Name     *string
	Class    *string
	Subjects []models.Subject
}

func (s *UserStore) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*models.User, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if upd.Name != nil {
		if _, err := tx.ExecContext(ctx, "UPDATE users SET name = ? WHERE id = ?", *upd.Name, userID); err != nil {
			return nil, fmt.Errorf("update name: %w", err)
		}
	}
	if upd.Class != nil {
		if _, err := tx.ExecContext(ctx, "UPDATE users SET class = ? WHERE id = ?", *upd.Class, userID); err != nil {
			return nil, fmt.Errorf("update class: %w", err)
		}
	}
	if upd.Subjects != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM subjects WHERE user_id = ?", userID); err != nil {
			return nil, fmt.Errorf("clear subjects: %w", err)
		}
		if err := replaceSubjectsTx(ctx, tx, userID, upd.Subjects); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(ctx, userID)
}

// TouchLastLogin stamps a successful login.
func (s *UserStore) TouchLastLogin(ctx context.Context, userID int64) error {
	_, err := s.DB.ExecContext(ctx, "UPDATE users SET last_login_at = ? WHERE id = ?", time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (s *UserStore) loadSubjects(ctx context.Context, userID int64) ([]models.Subject, error) {
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

func replaceSubjectsTx(ctx context.Context, tx *sql.Tx, userID int64, subjects []models.Subject) error {
	for i, sub := range subjects {
		status := sub.Status
		if status == "" {
			status = "active"
		}
		assignments, err := encodeAssignments(sub.Assignments)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO subjects (user_id, name, assignments, status, position) VALUES (?, ?, ?, ?, ?)",
			userID, sub.Name, assignments, status, i,
		)
		if err != nil {
			if me, ok := err.(*mysql.MySQLError); ok && me.Number == mysqlDuplicateEntry {
				return ErrDuplicateSubject
			}
			return fmt.Errorf("insert subject: %w", err)
		}
	}
	return nil
}

func encodeAssignments(assignments []string) (string, error) {
	if assignments == nil {
		assignments = []string{}
	}
	b, err := json.Marshal(assignments)
	if err != nil {
		return "", fmt.Errorf("encode assignments: %w", err)
	}
	return string(b), nil
}

func decodeAssignments(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return []string{}
	}
	return out
}
