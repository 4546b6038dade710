package auth

import (
	"context"

	"studymate/internal/models"
	"studymate/internal/store"
)

// UserStore is the slice of the credential store the auth handlers need.
// *store.UserStore satisfies it; tests substitute a fake.
type UserStore interface {
	Create(ctx context.Context, name, email, password, class string, subjects []models.Subject) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	ChangePassword(ctx context.Context, userID int64, newPassword string) error
	UpdateProfile(ctx context.Context, userID int64, upd store.ProfileUpdate) (*models.User, error)
	TouchLastLogin(ctx context.Context, userID int64) error
}

// TokenIssuer mints a bearer token for a user id.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// SubjectInput is the wire shape for a subject in register/profile payloads.
type SubjectInput struct {
	Name        string   `json:"name"`
	Assignments []string `json:"assignments,omitempty"`
	Status      string   `json:"status,omitempty"`
}

func toSubjects(in []SubjectInput) []models.Subject {
	if in == nil {
		return nil
	}
	out := make([]models.Subject, 0, len(in))
	for _, s := range in {
		out = append(out, models.Subject{
			Name:        s.Name,
			Assignments: s.Assignments,
			Status:      s.Status,
		})
	}
	return out
}
