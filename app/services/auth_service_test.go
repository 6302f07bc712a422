package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tokoku/app/repositories"
	"github.com/shashiranjanraj/tokoku/app/services"
	"github.com/shashiranjanraj/tokoku/pkg/auth"
)

func TestLoginIssuesToken(t *testing.T) {
	db := newShopDB(t)
	users := repositories.NewUserRepository(db)
	userSvc := services.NewUserService(users)
	authSvc := services.NewAuthService(users)

	_, err := userSvc.Create(services.UserInput{Username: "kasir", Password: "rahasia123", Role: "staff"})
	require.NoError(t, err)

	token, user, err := authSvc.Login("kasir", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "kasir", user.Username)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	db := newShopDB(t)
	users := repositories.NewUserRepository(db)
	_, err := services.NewUserService(users).Create(services.UserInput{Username: "kasir", Password: "rahasia123"})
	require.NoError(t, err)

	_, _, err = services.NewAuthService(users).Login("kasir", "salah")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	db := newShopDB(t)

	_, _, err := services.NewAuthService(repositories.NewUserRepository(db)).Login("nobody", "x")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestDefaultAdminCanLogIn(t *testing.T) {
	db := newShopDB(t) // provisioner seeds the admin account

	_, user, err := services.NewAuthService(repositories.NewUserRepository(db)).Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
}

func TestUserPasswordStoredHashed(t *testing.T) {
	db := newShopDB(t)
	users := repositories.NewUserRepository(db)

	created, err := services.NewUserService(users).Create(services.UserInput{Username: "kasir", Password: "rahasia123"})
	require.NoError(t, err)

	stored, err := users.FindByID(created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "rahasia123"))
}

func TestUserCreateRejectsDuplicateUsername(t *testing.T) {
	db := newShopDB(t)
	svc := services.NewUserService(repositories.NewUserRepository(db))

	_, err := svc.Create(services.UserInput{Username: "kasir", Password: "a1b2c3"})
	require.NoError(t, err)
	_, err = svc.Create(services.UserInput{Username: "kasir", Password: "d4e5f6"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
}

func TestUserUpdateKeepsPasswordWhenBlank(t *testing.T) {
	db := newShopDB(t)
	users := repositories.NewUserRepository(db)
	svc := services.NewUserService(users)

	created, err := svc.Create(services.UserInput{Username: "kasir", Password: "rahasia123"})
	require.NoError(t, err)

	_, err = svc.Update(created.ID, services.UserInput{Role: "admin"})
	require.NoError(t, err)

	stored, err := users.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", stored.Role)
	assert.True(t, auth.CheckPassword(stored.Password, "rahasia123"))
}
