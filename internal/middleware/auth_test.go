package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/internal/models"
	"studymate/internal/store"
	"studymate/internal/token"
)

type fakeVerifier struct {
	userID int64
	err    error
}

func (f *fakeVerifier) Verify(string) (int64, error) {
	return f.userID, f.err
}

type fakeLoader struct {
	users map[int64]*models.User
}

func (f *fakeLoader) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

func runGate(t *testing.T, verifier TokenVerifier, loader UserLoader, authHeader string) (*httptest.ResponseRecorder, *models.User) {
	t.Helper()

	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFrom(r.Context())
		require.True(t, ok)
		seen = u
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	AuthJWT(verifier, loader)(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthJWT_Success(t *testing.T) {
	user := &models.User{ID: 1, Name: "Ana Lee", IsActive: true}
	loader := &fakeLoader{users: map[int64]*models.User{1: user}}

	rec, seen := runGate(t, &fakeVerifier{userID: 1}, loader, "Bearer sometoken")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user, seen)
}

// The auth scheme is matched case-insensitively per RFC 7235.
func TestAuthJWT_LowercaseScheme(t *testing.T) {
	user := &models.User{ID: 1, Name: "Ana Lee", IsActive: true}
	loader := &fakeLoader{users: map[int64]*models.User{1: user}}

	rec, seen := runGate(t, &fakeVerifier{userID: 1}, loader, "bearer sometoken")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user, seen)
}

func TestAuthJWT_Rejections(t *testing.T) {
	activeLoader := &fakeLoader{users: map[int64]*models.User{
		1: {ID: 1, IsActive: true},
		2: {ID: 2, IsActive: false},
	}}

	tests := []struct {
		name        string
		header      string
		verifier    TokenVerifier
		wantMessage string
	}{
		{"missing header", "", &fakeVerifier{userID: 1}, "authentication required"},
		{"not bearer", "Basic abc", &fakeVerifier{userID: 1}, "authentication required"},
		{"empty token", "Bearer ", &fakeVerifier{userID: 1}, "authentication required"},
		{"bad token", "Bearer x", &fakeVerifier{err: token.ErrInvalidToken}, "invalid or expired token"},
		{"unknown user", "Bearer x", &fakeVerifier{userID: 99}, "authentication required"},
		{"deactivated user", "Bearer x", &fakeVerifier{userID: 2}, "authentication required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			})
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			AuthJWT(tt.verifier, activeLoader)(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

// An unknown user and a deactivated user must look identical from outside.
func TestAuthJWT_NoAccountStateOracle(t *testing.T) {
	loader := &fakeLoader{users: map[int64]*models.User{2: {ID: 2, IsActive: false}}}

	recUnknown := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer x")
	AuthJWT(&fakeVerifier{userID: 99}, loader)(http.NotFoundHandler()).ServeHTTP(recUnknown, req)

	recInactive := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/p", nil)
	req2.Header.Set("Authorization", "Bearer x")
	AuthJWT(&fakeVerifier{userID: 2}, loader)(http.NotFoundHandler()).ServeHTTP(recInactive, req2)

	assert.Equal(t, recUnknown.Code, recInactive.Code)
	assert.Equal(t, recUnknown.Body.String(), recInactive.Body.String())
}
