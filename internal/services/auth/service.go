// Package auth is the thin collaborator surface the wallet core consumes
// identity from: credential check and access-token issue. Sessions, refresh
// tokens and OTP flows are out of scope.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dwallet/internal/models"
	"dwallet/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type Service interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type service struct {
	repo   repositories.UserRepository
	config Config
}

func NewService(repo repositories.UserRepository, config Config) Service {
	if repo == nil {
		panic("user repository is required")
	}
	if config.TokenTTL == 0 {
		config.TokenTTL = 24 * time.Hour
	}
	return &service{repo: repo, config: config}
}

func (s *service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if u.IsDeleted || !u.IsActive {
		return "", nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) issueToken(u *models.User) (string, error) {
	now := time.Now()
	claims := &models.UserClaims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
