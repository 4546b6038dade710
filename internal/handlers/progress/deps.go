package progress

import (
	"context"
	"time"

	"studymate/internal/models"
)

// ProgressStore is satisfied by *store.ProgressStore.
type ProgressStore interface {
	Upsert(ctx context.Context, r *models.ProgressRecord) (*models.ProgressRecord, error)
	List(ctx context.Context, userID int64) ([]models.ProgressRecord, error)
	Weekly(ctx context.Context, userID int64, now time.Time) (*models.WeeklyProgress, error)
}
