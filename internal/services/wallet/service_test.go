package wallet

import (
	"context"
	"testing"

	"dwallet/internal/models"
	"dwallet/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) repositories.LedgerRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repositories.Migrate(db))
	return repositories.NewLedgerRepository(db)
}

// recordingCache counts cache traffic and serves whatever was last cached.
type recordingCache struct {
	wallets     map[uint]*models.Wallet
	hits        int
	invalidated int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{wallets: make(map[uint]*models.Wallet)}
}

func (c *recordingCache) GetWallet(_ context.Context, userID uint) (*models.Wallet, bool, error) {
	w, ok := c.wallets[userID]
	if ok {
		c.hits++
	}
	return w, ok, nil
}

func (c *recordingCache) CacheWallet(_ context.Context, w *models.Wallet) error {
	c.wallets[w.UserID] = w
	return nil
}

func (c *recordingCache) InvalidateWallet(_ context.Context, userID uint) error {
	delete(c.wallets, userID)
	c.invalidated++
	return nil
}

func TestCreateWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("opens with the signup bonus", func(t *testing.T) {
		svc := NewService(newTestRepo(t), nil)

		w, err := svc.CreateWallet(ctx, 1, models.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, models.SignupBonus, w.Balance)
		assert.Equal(t, models.WalletTypeUser, w.Type)
		assert.True(t, w.IsActive)
	})

	t.Run("agent wallets carry the agent type", func(t *testing.T) {
		svc := NewService(newTestRepo(t), nil)

		w, err := svc.CreateWallet(ctx, 1, models.RoleAgent)
		require.NoError(t, err)
		assert.Equal(t, models.WalletTypeAgent, w.Type)
	})

	t.Run("one wallet per user", func(t *testing.T) {
		svc := NewService(newTestRepo(t), nil)

		_, err := svc.CreateWallet(ctx, 1, models.RoleUser)
		require.NoError(t, err)

		_, err = svc.CreateWallet(ctx, 1, models.RoleUser)
		assert.ErrorIs(t, err, ErrWalletAlreadyExists)
	})

	t.Run("admins are not eligible", func(t *testing.T) {
		svc := NewService(newTestRepo(t), nil)

		_, err := svc.CreateWallet(ctx, 1, models.RoleAdmin)
		assert.ErrorIs(t, err, ErrRoleNotEligible)
	})
}

func TestGetWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		svc := NewService(newTestRepo(t), nil)

		_, err := svc.GetWallet(ctx, 42)
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		cache := newRecordingCache()
		svc := NewService(newTestRepo(t), cache)

		created, err := svc.CreateWallet(ctx, 1, models.RoleUser)
		require.NoError(t, err)

		got, err := svc.GetWallet(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, 1, cache.hits)
	})
}

func TestWalletStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivate keeps the balance", func(t *testing.T) {
		repo := newTestRepo(t)
		cache := newRecordingCache()
		svc := NewService(repo, cache)

		created, err := svc.CreateWallet(ctx, 1, models.RoleUser)
		require.NoError(t, err)

		require.NoError(t, svc.DeactivateWallet(ctx, 1))

		stored, err := repo.GetWalletByID(created.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsActive)
		assert.Equal(t, models.SignupBonus, stored.Balance)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("deactivate without a wallet", func(t *testing.T) {
		svc := NewService(newTestRepo(t), nil)

		err := svc.DeactivateWallet(ctx, 42)
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})

	t.Run("admin toggle by wallet id", func(t *testing.T) {
		svc := NewService(newTestRepo(t), nil)

		created, err := svc.CreateWallet(ctx, 1, models.RoleUser)
		require.NoError(t, err)

		w, err := svc.SetWalletStatus(ctx, created.ID, false)
		require.NoError(t, err)
		assert.False(t, w.IsActive)

		w, err = svc.SetWalletStatus(ctx, created.ID, true)
		require.NoError(t, err)
		assert.True(t, w.IsActive)
	})

	t.Run("toggle on a missing wallet", func(t *testing.T) {
		svc := NewService(newTestRepo(t), nil)

		_, err := svc.SetWalletStatus(ctx, 42, false)
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})
}

func TestListWallets(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(t), nil)

	for userID := uint(1); userID <= 5; userID++ {
		_, err := svc.CreateWallet(ctx, userID, models.RoleUser)
		require.NoError(t, err)
	}

	wallets, total, err := svc.ListWallets(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, wallets, 2)
}
