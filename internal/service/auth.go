package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/logger"
	"taskhive-backend/internal/repository"
	"taskhive-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrAnonymousDisabled is returned when anonymous sign-in is attempted
// outside debug mode.
var ErrAnonymousDisabled = errors.New("anonymous sign-in is only available in debug mode")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	debug    bool
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, debug bool) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		debug:    debug,
	}
}

func (s *authService) Signup(ctx context.Context, userEmail, name, password string) (*domain.User, *TokenPair, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        userEmail,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("User signed up", "user_id", user.ID)
	return user, pair, nil
}

func (s *authService) Login(ctx context.Context, userEmail, password string) (*domain.User, *TokenPair, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))

	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// SignInAnonymous creates a throwaway account for local development.
func (s *authService) SignInAnonymous(ctx context.Context) (*domain.User, *TokenPair, error) {
	if !s.debug {
		return nil, nil, ErrAnonymousDisabled
	}

	id := uuid.NewString()
	user := &domain.User{
		ID:          id,
		Email:       fmt.Sprintf("anon-%s@test.com", id[:8]),
		Name:        "Anonymous",
		IsAnonymous: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != security.TokenTypeRefresh {
		return nil, security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, security.ErrInvalidToken
	}
	return s.issueTokens(user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	// Best effort: log who signed out when the token still parses.
	if claims, err := s.tokens.ValidateToken(refreshToken); err == nil {
		logger.Info("User logged out", "user_id", claims.UserID)
	}
	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID, name string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *authService) issueTokens(user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
