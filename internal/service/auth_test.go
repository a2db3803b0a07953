package service_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pageza/devconnector/backend/internal/models"
	"github.com/pageza/devconnector/backend/internal/service"
	"github.com/pageza/devconnector/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// countingHasher records how often a comparison was attempted
type countingHasher struct {
	*service.PasswordHasher
	compares atomic.Int32
}

func (h *countingHasher) Compare(hash, password string) bool {
	h.compares.Add(1)
	return h.PasswordHasher.Compare(hash, password)
}

func setupAuthTest(t *testing.T) (*gorm.DB, *service.AuthService, *service.TokenService, *countingHasher) {
	db := testhelpers.SetupTestDatabase(t)
	tokens := service.NewTokenService(service.TokenConfig{Secret: "test-secret", TTL: time.Hour})
	hasher := &countingHasher{PasswordHasher: service.NewPasswordHasher(bcrypt.MinCost)}
	return db, service.NewAuthService(db, hasher, tokens), tokens, hasher
}

func TestRegister(t *testing.T) {
	db, authSvc, tokens, _ := setupAuthTest(t)
	ctx := context.Background()

	token, err := authSvc.Register(ctx, "John Doe", "john@example.com", "secret123")
	require.NoError(t, err)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", userID).Error)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, service.GravatarURL("john@example.com"), user.Avatar)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegisterDuplicate(t *testing.T) {
	db, authSvc, _, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, "John Doe", "john@example.com", "secret123")
	require.NoError(t, err)

	token, err := authSvc.Register(ctx, "Someone Else", "john@example.com", "other-password")
	assert.ErrorIs(t, err, service.ErrDuplicateUser)
	assert.Empty(t, token)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	_, authSvc, tokens, _ := setupAuthTest(t)
	ctx := context.Background()

	registered, err := authSvc.Register(ctx, "John Doe", "john@example.com", "secret123")
	require.NoError(t, err)
	wantID, err := tokens.Verify(registered)
	require.NoError(t, err)

	token, err := authSvc.Login(ctx, "john@example.com", "secret123")
	require.NoError(t, err)

	gotID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, wantID, gotID)
}

func TestLoginWrongPassword(t *testing.T) {
	_, authSvc, _, hasher := setupAuthTest(t)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, "John Doe", "john@example.com", "secret123")
	require.NoError(t, err)

	_, err = authSvc.Login(ctx, "john@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Equal(t, int32(1), hasher.compares.Load())
}

func TestLoginUnknownEmail(t *testing.T) {
	_, authSvc, _, hasher := setupAuthTest(t)

	_, err := authSvc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Zero(t, hasher.compares.Load(), "no hash comparison for an unknown email")
}

func TestGetUser(t *testing.T) {
	_, authSvc, tokens, _ := setupAuthTest(t)
	ctx := context.Background()

	token, err := authSvc.Register(ctx, "John Doe", "john@example.com", "secret123")
	require.NoError(t, err)
	userID, err := tokens.Verify(token)
	require.NoError(t, err)

	user, err := authSvc.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "John Doe", user.Name)
	assert.Empty(t, user.PasswordHash)
}

func TestGetUserDeleted(t *testing.T) {
	db, authSvc, tokens, _ := setupAuthTest(t)
	ctx := context.Background()

	token, err := authSvc.Register(ctx, "John Doe", "john@example.com", "secret123")
	require.NoError(t, err)
	userID, err := tokens.Verify(token)
	require.NoError(t, err)

	require.NoError(t, db.Where("id = ?", userID).Delete(&models.User{}).Error)

	_, err = authSvc.GetUser(ctx, userID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
