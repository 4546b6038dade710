package progress

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/internal/middleware"
	"studymate/internal/models"
)

// fakeProgressStore keys records by date, mirroring the one-per-day upsert.
type fakeProgressStore struct {
	records map[string]*models.ProgressRecord
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: map[string]*models.ProgressRecord{}}
}

func (f *fakeProgressStore) Upsert(_ context.Context, r *models.ProgressRecord) (*models.ProgressRecord, error) {
	cp := *r
	f.records[r.Date] = &cp
	out := cp
	return &out, nil
}

func (f *fakeProgressStore) List(_ context.Context, userID int64) ([]models.ProgressRecord, error) {
	out := []models.ProgressRecord{}
	for _, r := range f.records {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeProgressStore) Weekly(_ context.Context, userID int64, now time.Time) (*models.WeeklyProgress, error) {
	since := now.AddDate(0, 0, -6).Format("2006-01-02")
	out := &models.WeeklyProgress{Days: []models.WeeklyProgressDay{}}
	for date, r := range f.records {
		if date < since {
			continue
		}
		out.TotalMinutes += r.StudyMinutes
		out.TotalTasksCompleted += r.TasksCompleted
		out.Days = append(out.Days, models.WeeklyProgressDay{
			Date: date, StudyMinutes: r.StudyMinutes, TasksCompleted: r.TasksCompleted,
		})
	}
	return out, nil
}

func asUser(req *http.Request, user *models.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.UserKey, user))
}

func testLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var userA = &models.User{ID: 1, IsActive: true}

func TestUpsertProgress(t *testing.T) {
	fake := newFakeProgressStore()
	h := &UpsertHandler{Progress: fake, Log: testLog()}

	req := asUser(httptest.NewRequest(http.MethodPost, "/progress",
		strings.NewReader(`{"date":"2025-03-10","study_minutes":90,"tasks_completed":3}`)), userA)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, fake.records, "2025-03-10")

	// same day again replaces the record
	req = asUser(httptest.NewRequest(http.MethodPost, "/progress",
		strings.NewReader(`{"date":"2025-03-10","study_minutes":120,"tasks_completed":4}`)), userA)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 120, fake.records["2025-03-10"].StudyMinutes)
	assert.Len(t, fake.records, 1)
}

func TestUpsertProgress_Validation(t *testing.T) {
	h := &UpsertHandler{Progress: newFakeProgressStore(), Log: testLog()}

	req := asUser(httptest.NewRequest(http.MethodPost, "/progress",
		strings.NewReader(`{"date":"10/03/2025","study_minutes":-5}`)), userA)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeeklySummary(t *testing.T) {
	fake := newFakeProgressStore()
	now := time.Now()
	for i, minutes := range []int{60, 45, 30} {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		fake.records[date] = &models.ProgressRecord{
			UserID: 1, Date: date, StudyMinutes: minutes, TasksCompleted: i,
		}
	}
	// outside the window, must not count
	old := now.AddDate(0, 0, -10).Format("2006-01-02")
	fake.records[old] = &models.ProgressRecord{UserID: 1, Date: old, StudyMinutes: 999}

	h := &WeeklyHandler{Progress: fake, Log: testLog()}
	req := asUser(httptest.NewRequest(http.MethodGet, "/progress/weekly", nil), userA)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_minutes":135`)
	assert.Contains(t, rec.Body.String(), `"total_tasks_completed":3`)
	assert.NotContains(t, rec.Body.String(), "999")
}
