package auth

import (
	"context"
	"testing"
	"time"

	"dwallet/internal/models"
	"dwallet/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (Service, repositories.UserRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repositories.Migrate(db))

	repo := repositories.NewUserRepository(db)
	return NewService(repo, Config{JWTSecret: testSecret, TokenTTL: time.Hour}), repo
}

func seedUser(t *testing.T, repo repositories.UserRepository, email, password, role string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, repo.Create(u))
	return u
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a parsable token", func(t *testing.T) {
		svc, repo := newTestService(t)
		u := seedUser(t, repo, "ada@example.com", "secret123", models.RoleUser)

		token, loggedIn, err := svc.Login(ctx, "ada@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, u.ID, loggedIn.ID)

		claims := &models.UserClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, u.ID, claims.UserID)
		assert.Equal(t, models.RoleUser, claims.Role)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestService(t)
		seedUser(t, repo, "ada@example.com", "secret123", models.RoleUser)

		_, _, err := svc.Login(ctx, "ada@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, repo := newTestService(t)
		u := seedUser(t, repo, "ada@example.com", "secret123", models.RoleUser)
		u.IsActive = false
		require.NoError(t, repo.Update(u))

		_, _, err := svc.Login(ctx, "ada@example.com", "secret123")
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})

	t.Run("soft-deleted account", func(t *testing.T) {
		svc, repo := newTestService(t)
		u := seedUser(t, repo, "ada@example.com", "secret123", models.RoleUser)
		u.IsDeleted = true
		require.NoError(t, repo.Update(u))

		_, _, err := svc.Login(ctx, "ada@example.com", "secret123")
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})
}
