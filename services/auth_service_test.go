package services

import (
	"context"
	"testing"
	"time"

	"github.com/GermanChai/germanchai/entity"
	"github.com/GermanChai/germanchai/repository"
	"github.com/GermanChai/germanchai/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) (*AuthService, *memCartStore) {
	db := newTestDB(t)
	store := newMemCartStore()
	return NewAuthService(repository.NewUserRepository(db), store, testSecret, time.Hour), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "  Asha@Example.com ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.NotEmpty(t, token)

	// duplicate email rejected
	_, _, err = svc.Register(ctx, "asha@example.com", "other")
	assert.Error(t, err)

	gotToken, gotUser, err := svc.Login(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotUser.ID)

	claims, err := utils.ParseToken(gotToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// auth-state transitions invalidate any cart stored for the account
func TestAuthTransitions_InvalidateCart(t *testing.T) {
	svc, store := newAuthService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)

	chai := entity.MenuItem{Name: "Masala Chai", Price: 4000}
	chai.ID = 1
	stale := entity.NewCart(user.ID)
	stale.Add(chai)
	require.NoError(t, store.Save(ctx, stale))

	_, _, err = svc.Login(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)

	cart, err := store.Load(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, cart.Empty(), "login must drop the stored cart")

	require.NoError(t, store.Save(ctx, stale))
	svc.Logout(ctx, user.ID)

	cart, err = store.Load(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, cart.Empty(), "logout must drop the stored cart")
}

func TestPasswordsAreHashed(t *testing.T) {
	db := newTestDB(t)
	store := newMemCartStore()
	svc := NewAuthService(repository.NewUserRepository(db), store, testSecret, time.Hour)

	user, _, err := svc.Register(context.Background(), "asha@example.com", "secret123")
	require.NoError(t, err)

	var stored entity.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}
