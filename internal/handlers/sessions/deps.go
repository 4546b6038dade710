package sessions

import (
	"context"

	"studymate/internal/models"
	"studymate/internal/ws"
)

// SessionStore is satisfied by *store.SessionStore.
type SessionStore interface {
	Start(ctx context.Context, userID int64, subject, topic string) (*models.StudySession, error)
	End(ctx context.Context, userID, id int64) (*models.StudySession, error)
	Get(ctx context.Context, userID, id int64) (*models.StudySession, error)
	List(ctx context.Context, userID int64) ([]models.StudySession, error)
	Delete(ctx context.Context, userID, id int64) error
}

type Notifier interface {
	Notify(userID int64, event ws.Event)
}
