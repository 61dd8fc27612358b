package services

import (
	"context"
	"testing"

	"jewelry-shop/config"
	"jewelry-shop/models"
	"jewelry-shop/repositories"
	"jewelry-shop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore is an in-memory repositories.UserStore keyed by user id.
type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return models.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = "user-1"
	}
	user.IsActive = true
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) FindAll(_ context.Context, _, _ string, _, _ int) ([]models.User, int, error) {
	out := []models.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return models.ErrNotFound
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID, hashedPassword string) error {
	u, ok := f.users[userID]
	if !ok {
		return models.ErrNotFound
	}
	u.Password = hashedPassword
	f.users[userID] = u
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	u, ok := f.users[id]
	if !ok {
		return models.ErrNotFound
	}
	u.IsActive = false
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) ListAddresses(_ context.Context, _ string) ([]models.Address, error) {
	return nil, nil
}

func (f *fakeUserStore) CreateAddress(_ context.Context, _ *models.Address) error {
	return nil
}

var _ repositories.UserStore = (*fakeUserStore)(nil)

func newAuthService(t *testing.T) (*AuthService, *fakeUserStore) {
	t.Helper()
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	store := newFakeUserStore()
	hash, err := utils.HashPassword("opal-1234")
	require.NoError(t, err)
	store.users["user-1"] = models.User{
		ID:       "user-1",
		Email:    "ada@example.com",
		Password: hash,
		FullName: "Ada Byron",
		Phone:    "555-0100",
		Role:     models.RoleCustomer,
		IsActive: true,
	}
	return NewAuthService(store), store
}

func TestUpdateProfile_PatchesNameAndPhone(t *testing.T) {
	svc, store := newAuthService(t)

	name := "Ada Lovelace"
	phone := "555-0199"
	user, err := svc.UpdateProfile(context.Background(), "user-1",
		models.UpdateProfileRequest{FullName: &name, Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, name, user.FullName)
	assert.Equal(t, phone, user.Phone)
	assert.Equal(t, name, store.users["user-1"].FullName)
	assert.Equal(t, phone, store.users["user-1"].Phone)
}

func TestUpdateProfile_NilFieldsKeepValues(t *testing.T) {
	svc, store := newAuthService(t)

	name := "Ada Lovelace"
	user, err := svc.UpdateProfile(context.Background(), "user-1",
		models.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)

	assert.Equal(t, name, user.FullName)
	assert.Equal(t, "555-0100", user.Phone)
	// email and role never move through this path
	assert.Equal(t, "ada@example.com", store.users["user-1"].Email)
	assert.Equal(t, models.RoleCustomer, store.users["user-1"].Role)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	svc, _ := newAuthService(t)

	name := "Nobody"
	_, err := svc.UpdateProfile(context.Background(), "missing",
		models.UpdateProfileRequest{FullName: &name})
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "ada@example.com",
		Password: "another-pass",
		FullName: "Impostor",
	})
	require.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestLogin_RoundTripAndWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "ada@example.com", Password: "opal-1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email: "ada@example.com", Password: "wrong"})
	require.ErrorIs(t, err, models.ErrInvalidLogin)
}
