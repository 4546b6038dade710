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

func postJSONAs(t *testing.T, h http.Handler, user *models.User, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserKey, user))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestChangePassword_RoundTrip(t *testing.T) {
	users := newFakeUserStore()
	seedUser(t, users)
	user := users.byID[1]

	h := &ChangePasswordHandler{Users: users, Log: testLog()}
	rec := postJSONAs(t, h, user, "/auth/change-password",
		`{"current_password":"secret1","new_password":"secret2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// old password no longer works, new one does
	assert.False(t, users.VerifyPassword(users.byID[1], "secret1"))
	assert.True(t, users.VerifyPassword(users.byID[1], "secret2"))
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	users := newFakeUserStore()
	seedUser(t, users)

	h := &ChangePasswordHandler{Users: users, Log: testLog()}
	rec := postJSONAs(t, h, users.byID[1], "/auth/change-password",
		`{"current_password":"nope123","new_password":"secret2"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "current password is incorrect", body["message"])
	assert.True(t, users.VerifyPassword(users.byID[1], "secret1"))
}

func TestChangePassword_TooShort(t *testing.T) {
	users := newFakeUserStore()
	seedUser(t, users)

	h := &ChangePasswordHandler{Users: users, Log: testLog()}
	rec := postJSONAs(t, h, users.byID[1], "/auth/change-password",
		`{"current_password":"secret1","new_password":"12345"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangePassword_Unauthenticated(t *testing.T) {
	h := &ChangePasswordHandler{Users: newFakeUserStore(), Log: testLog()}
	rec := postJSON(t, h, "/auth/change-password", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
