package reminders

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/internal/middleware"
	"studymate/internal/models"
	"studymate/internal/store"
	"studymate/internal/ws"
)

type fakeReminderStore struct {
	mu        sync.Mutex
	nextID    int64
	reminders map[int64]*models.Reminder
}

func newFakeReminderStore() *fakeReminderStore {
	return &fakeReminderStore{nextID: 1, reminders: map[int64]*models.Reminder{}}
}

func (f *fakeReminderStore) Create(_ context.Context, r *models.Reminder) (*models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *r
	cp.ID = f.nextID
	f.nextID++
	f.reminders[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeReminderStore) Get(_ context.Context, userID, id int64) (*models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reminders[id]
	if !ok || r.UserID != userID {
		return nil, store.ErrNotFound
	}
	out := *r
	return &out, nil
}

func (f *fakeReminderStore) List(_ context.Context, userID int64) ([]models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Reminder{}
	for _, r := range f.reminders {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReminderStore) Update(_ context.Context, r *models.Reminder) (*models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.reminders[r.ID]
	if !ok || existing.UserID != r.UserID {
		return nil, store.ErrNotFound
	}
	cp := *r
	f.reminders[r.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeReminderStore) Delete(_ context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reminders[id]
	if !ok || r.UserID != userID {
		return store.ErrNotFound
	}
	delete(f.reminders, id)
	return nil
}

type fakeNotifier struct {
	events []ws.Event
}

func (f *fakeNotifier) Notify(_ int64, event ws.Event) {
	f.events = append(f.events, event)
}

func testRouter(reminders ReminderStore, hub Notifier) chi.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)

	userA := &models.User{ID: 1, IsActive: true}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), middleware.UserKey, userA)))
		})
	})
	r.Method(http.MethodPost, "/reminders", &CreateHandler{Reminders: reminders, Hub: hub, Log: log})
	r.Method(http.MethodGet, "/reminders", &ListHandler{Reminders: reminders, Log: log})
	r.Method(http.MethodPut, "/reminders/{id}", &UpdateHandler{Reminders: reminders, Log: log})
	r.Method(http.MethodDelete, "/reminders/{id}", &DeleteHandler{Reminders: reminders, Log: log})
	return r
}

func TestCreateReminder(t *testing.T) {
	fake := newFakeReminderStore()
	hub := &fakeNotifier{}
	router := testRouter(fake, hub)

	remindAt := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reminders",
		strings.NewReader(`{"title":"physics revision","remind_at":"`+remindAt+`","repeat":"daily"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, fake.reminders, 1)
	require.Len(t, hub.events, 1)
	assert.Equal(t, "reminder_created", hub.events[0].Type)
}

func TestCreateReminder_SentFlagHonored(t *testing.T) {
	fake := newFakeReminderStore()
	router := testRouter(fake, &fakeNotifier{})

	remindAt := time.Now().Add(time.Hour).Format(time.RFC3339)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reminders",
		strings.NewReader(`{"title":"already shown elsewhere","remind_at":"`+remindAt+`","sent":true}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, fake.reminders, 1)
	assert.True(t, fake.reminders[1].Sent)
}

func TestCreateReminder_PastDateRejected(t *testing.T) {
	fake := newFakeReminderStore()
	router := testRouter(fake, &fakeNotifier{})

	remindAt := time.Now().Add(-time.Hour).Format(time.RFC3339)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reminders",
		strings.NewReader(`{"title":"too late","remind_at":"`+remindAt+`"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "remind_at must be in the future")
	assert.Empty(t, fake.reminders)
}

func TestCreateReminder_InvalidRepeat(t *testing.T) {
	router := testRouter(newFakeReminderStore(), &fakeNotifier{})

	remindAt := time.Now().Add(time.Hour).Format(time.RFC3339)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reminders",
		strings.NewReader(`{"title":"x","remind_at":"`+remindAt+`","repeat":"monthly"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "repeat must be one of")
}

func TestUpdateReminder_AllowsPastDate(t *testing.T) {
	fake := newFakeReminderStore()
	router := testRouter(fake, &fakeNotifier{})

	fake.reminders[1] = &models.Reminder{
		ID: 1, UserID: 1, Title: "old", RemindAt: time.Now().Add(-time.Hour), Repeat: "none",
	}
	fake.nextID = 2

	// marking a past reminder as sent must not fail the future check
	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/reminders/1",
		strings.NewReader(`{"title":"old","remind_at":"`+past+`","sent":true}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, fake.reminders[1].Sent)
}

func TestReminderOwnershipScoping(t *testing.T) {
	fake := newFakeReminderStore()
	router := testRouter(fake, &fakeNotifier{})

	fake.reminders[7] = &models.Reminder{
		ID: 7, UserID: 2, Title: "someone else's", RemindAt: time.Now().Add(time.Hour), Repeat: "none",
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/reminders/7", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	future := time.Now().Add(time.Hour).Format(time.RFC3339)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/reminders/7",
		strings.NewReader(`{"title":"mine now","remind_at":"`+future+`"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
