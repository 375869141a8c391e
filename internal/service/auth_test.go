package service

import (
	"context"
	"testing"
	"time"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTokenManager(t *testing.T) security.TokenManager {
	t.Helper()
	return security.NewTokenManager("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("signup issues a token pair", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, newTokenManager(t), false)

		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "ada@example.com" && u.PasswordHash != "s3cret"
		})).Return(nil)

		user, pair, err := svc.Signup(ctx, " Ada@Example.com ", "Ada", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("duplicate email surfaces as taken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, newTokenManager(t), false)

		userRepo.On("Create", ctx, mock.Anything).Return(domain.ErrEmailTaken)

		_, _, err := svc.Signup(ctx, "ada@example.com", "Ada", "s3cret")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("login with correct password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, newTokenManager(t), false)

		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		require.NoError(t, err)
		userRepo.On("GetByEmail", ctx, "ada@example.com").
			Return(&domain.User{ID: "u1", Email: "ada@example.com", PasswordHash: string(hash)}, nil)

		user, pair, err := svc.Login(ctx, "ada@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, newTokenManager(t), false)

		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		require.NoError(t, err)
		userRepo.On("GetByEmail", ctx, "ada@example.com").
			Return(&domain.User{ID: "u1", Email: "ada@example.com", PasswordHash: string(hash)}, nil)
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)

		_, _, errWrongPass := svc.Login(ctx, "ada@example.com", "nope")
		_, _, errNoUser := svc.Login(ctx, "nobody@example.com", "nope")
		assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_SignInAnonymous(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled outside debug mode", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), newTokenManager(t), false)

		_, _, err := svc.SignInAnonymous(ctx)
		assert.ErrorIs(t, err, ErrAnonymousDisabled)
	})

	t.Run("creates throwaway account in debug mode", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, newTokenManager(t), true)

		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.IsAnonymous
		})).Return(nil)

		user, pair, err := svc.SignInAnonymous(ctx)
		require.NoError(t, err)
		assert.True(t, user.IsAnonymous)
		assert.Regexp(t, `^anon-[0-9a-f]{8}@test\.com$`, user.Email)
		assert.NotEmpty(t, pair.AccessToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	tm := newTokenManager(t)
	svc := NewAuthService(new(MockUserRepo), tm, false)

	t.Run("acknowledges a valid refresh token", func(t *testing.T) {
		refresh, err := tm.GenerateRefreshToken("u1", "ada@example.com")
		require.NoError(t, err)
		assert.NoError(t, svc.Logout(ctx, refresh))
	})

	t.Run("never fails on a stale or garbled token", func(t *testing.T) {
		assert.NoError(t, svc.Logout(ctx, "not.a.token"))
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("renames the user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, newTokenManager(t), false)

		userRepo.On("GetByID", ctx, "u1").
			Return(&domain.User{ID: "u1", Email: "ada@example.com", Name: "Ada"}, nil)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == "u1" && u.Name == "Ada Lovelace"
		})).Return(nil)

		user, err := svc.UpdateProfile(ctx, "u1", "Ada Lovelace")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", user.Name)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, newTokenManager(t), false)

		userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := svc.UpdateProfile(ctx, "ghost", "Ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("refresh token rotates the pair", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tm := newTokenManager(t)
		svc := NewAuthService(userRepo, tm, false)

		refresh, err := tm.GenerateRefreshToken("u1", "ada@example.com")
		require.NoError(t, err)
		userRepo.On("GetByID", ctx, "u1").
			Return(&domain.User{ID: "u1", Email: "ada@example.com"}, nil)

		pair, err := svc.Refresh(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("access token is not accepted as refresh", func(t *testing.T) {
		tm := newTokenManager(t)
		svc := NewAuthService(new(MockUserRepo), tm, false)

		access, err := tm.GenerateAccessToken("u1", "ada@example.com")
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
