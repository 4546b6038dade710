package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/internal/middleware"
	"studymate/internal/models"
)

func putJSONAs(t *testing.T, h http.Handler, user *models.User, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/auth/profile", strings.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserKey, user))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestProfile_PartialUpdate(t *testing.T) {
	users := newFakeUserStore()
	seedUser(t, users)
	h := &ProfileHandler{Users: users, Log: testLog()}

	rec := putJSONAs(t, h, users.byID[1], `{"class":"11B"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "11B", users.byID[1].Class)
	assert.Equal(t, "Ana Lee", users.byID[1].Name) // untouched
}

func TestProfile_SubjectsReplaced(t *testing.T) {
	users := newFakeUserStore()
	seedUser(t, users)
	h := &ProfileHandler{Users: users, Log: testLog()}

	rec := putJSONAs(t, h, users.byID[1],
		`{"subjects":[{"name":"Math","assignments":["hw 1"]},{"name":"History"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, users.byID[1].Subjects, 2)
	assert.Equal(t, "Math", users.byID[1].Subjects[0].Name)
}

func TestProfile_Validation(t *testing.T) {
	users := newFakeUserStore()
	seedUser(t, users)
	h := &ProfileHandler{Users: users, Log: testLog()}

	rec := putJSONAs(t, h, users.byID[1], `{"name":"X9"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ana Lee", users.byID[1].Name)
}

func TestMe_ReturnsUserWithoutHash(t *testing.T) {
	users := newFakeUserStore()
	seedUser(t, users)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserKey, users.byID[1]))
	rec := httptest.NewRecorder()
	(&MeHandler{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"a@x.com"`)
	assert.NotContains(t, rec.Body.String(), "password_hash")
	assert.NotContains(t, rec.Body.String(), users.byID[1].PasswordHash)
}
