package service

import (
	"context"
	"testing"
	"time"

	"petslife-service/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (UserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return NewUserService(repo, nil, "test-secret", time.Hour), repo
}

func TestRegisterRegularUser(t *testing.T) {
	svc, repo := newUserFixture(t)

	profile, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserKindRegular, profile.Kind)
	assert.NotEmpty(t, profile.ID)

	stored, err := repo.FindByID(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password, "password must be stored hashed")
}

func TestRegisterWithLicenseBecomesVeterinarian(t *testing.T) {
	svc, _ := newUserFixture(t)

	profile, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Dr. Vera",
		Username: "vera",
		Email:    "vera@example.com",
		Password: "s3cret",
		CRMV:     "SP-12345",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserKindVeterinarian, profile.Kind)
	assert.Equal(t, "SP-12345", profile.CRMV)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &models.RegisterRequest{Name: "Other", Username: "other", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &models.RegisterRequest{Name: "Other", Username: "alice", Email: "other@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &models.RegisterRequest{Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)

	token, profile, err := svc.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, profile.ID)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, registered.ID, claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "regular", claims["kind"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newUserFixture(t)

	_, _, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveUnknownUser(t *testing.T) {
	svc, _ := newUserFixture(t)

	_, err := svc.Resolve(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchByUsername(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "x"})
	require.NoError(t, err)

	profile, err := svc.SearchByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)

	_, err = svc.SearchByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &models.RegisterRequest{Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "x"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, registered.ID, &models.UpdateProfileRequest{Name: "Alicia", Username: "alicia"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "alicia", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email, "email is immutable")
}

func TestAttachAvatar(t *testing.T) {
	svc, repo := newUserFixture(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &models.RegisterRequest{Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.AttachAvatar(ctx, registered.ID, "http://store/avatars/"+registered.ID))

	stored, err := repo.FindByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://store/avatars/"+registered.ID, stored.PhotoURL)

	assert.ErrorIs(t, svc.AttachAvatar(ctx, "ghost", "http://x"), ErrUserNotFound)
}
