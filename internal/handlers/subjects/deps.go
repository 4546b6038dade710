package subjects

import (
	"context"
	"strings"

	"studymate/internal/models"
)

// SubjectStore is satisfied by *store.SubjectStore.
type SubjectStore interface {
	List(ctx context.Context, userID int64) ([]models.Subject, error)
	Add(ctx context.Context, userID int64, sub *models.Subject) (*models.Subject, error)
	Update(ctx context.Context, userID int64, sub *models.Subject) (*models.Subject, error)
	Delete(ctx context.Context, userID, id int64) error
}

type SubjectRequest struct {
	Name        string   `json:"name"`
	Assignments []string `json:"assignments,omitempty"`
	Status      string   `json:"status,omitempty"`
}

var validStatuses = map[string]bool{"": true, "active": true, "archived": true}

func (req *SubjectRequest) toSubject() (*models.Subject, []string) {
	var errs []string
	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, "name is required")
	}
	if !validStatuses[req.Status] {
		errs = append(errs, "status must be active or archived")
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &models.Subject{
		Name:        name,
		Assignments: req.Assignments,
		Status:      req.Status,
	}, nil
}
