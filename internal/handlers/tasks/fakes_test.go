package tasks

import (
	"context"
	"time"

	"studymate/internal/models"
	"studymate/internal/store"
	"studymate/internal/ws"
)

type fakeTaskStore struct {
	nextID int64
	tasks  map[int64]*models.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{nextID: 1, tasks: map[int64]*models.Task{}}
}

func (f *fakeTaskStore) Create(_ context.Context, t *models.Task) (*models.Task, error) {
	cp := *t
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.tasks[cp.ID] = &cp
	f.nextID++
	out := cp
	return &out, nil
}

func (f *fakeTaskStore) Get(_ context.Context, userID, id int64) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return nil, store.ErrNotFound
	}
	out := *t
	return &out, nil
}

func (f *fakeTaskStore) List(_ context.Context, userID int64, status, subject string) ([]models.Task, error) {
	out := []models.Task{}
	for _, t := range f.tasks {
		if t.UserID != userID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		if subject != "" && t.Subject != subject {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTaskStore) Update(ctx context.Context, t *models.Task) (*models.Task, error) {
	existing, ok := f.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return nil, store.ErrNotFound
	}
	cp := *t
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now()
	f.tasks[t.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeTaskStore) SetStatus(ctx context.Context, userID, id int64, status string) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return nil, store.ErrNotFound
	}
	t.Status = status
	out := *t
	return &out, nil
}

func (f *fakeTaskStore) Delete(_ context.Context, userID, id int64) error {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return store.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

type fakeNotifier struct {
	events []ws.Event
}

func (f *fakeNotifier) Notify(_ int64, event ws.Event) {
	f.events = append(f.events, event)
}
