package auth

import (
	"context"
	"strings"
	"time"

	"studymate/internal/models"
	"studymate/internal/store"
	"studymate/internal/utils"
)

// fakeUserStore backs handler tests with an in-memory user map. Password
// hashing is real bcrypt so VerifyPassword behaves like production.
type fakeUserStore struct {
	nextID int64
	byID   map[int64]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, byID: map[int64]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, name, email, password, class string, subjects []models.Subject) (*models.User, error) {
	email = utils.NormalizeEmail(email)
	for _, u := range f.byID {
		if u.Email == email {
			return nil, store.ErrDuplicateEmail
		}
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	// subject names collide case-insensitively, like the unique key
	seen := map[string]bool{}
	for _, sub := range subjects {
		key := strings.ToLower(sub.Name)
		if seen[key] {
			return nil, store.ErrDuplicateSubject
		}
		seen[key] = true
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}
	u := &models.User{
		ID:           f.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Class:        class,
		Subjects:     subjects,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.byID[u.ID] = u
	f.nextID++
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	email = utils.NormalizeEmail(email)
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) VerifyPassword(user *models.User, password string) bool {
	return utils.CheckPassword(password, user.PasswordHash)
}

func (f *fakeUserStore) ChangePassword(_ context.Context, userID int64, newPassword string) error {
	u, ok := f.byID[userID]
	if !ok {
		return store.ErrNotFound
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, userID int64, upd store.ProfileUpdate) (*models.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Class != nil {
		u.Class = *upd.Class
	}
	if upd.Subjects != nil {
		u.Subjects = upd.Subjects
	}
	return u, nil
}

func (f *fakeUserStore) TouchLastLogin(_ context.Context, userID int64) error {
	if u, ok := f.byID[userID]; ok {
		now := time.Now()
		u.LastLoginAt = &now
	}
	return nil
}

// fakeIssuer mints predictable tokens.
type fakeIssuer struct{}

func (fakeIssuer) Issue(userID int64) (string, error) {
	return "token-for-user", nil
}
