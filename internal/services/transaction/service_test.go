package transaction

import (
	"context"
	"testing"
	"time"

	"dwallet/internal/models"
	"dwallet/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repositories.Migrate(db))
	return db
}

func uintPtr(v uint) *uint { return &v }

// seedHistory writes a fixed transaction history for user 1 plus one
// unrelated record, with one-day spacing so date filters have edges.
func seedHistory(t *testing.T, db *gorm.DB) time.Time {
	t.Helper()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		{Amount: 100, Type: models.TransactionTypeTopUp, ToUserID: uintPtr(1), Status: models.TransactionStatusCompleted, CreatedAt: base},
		{Amount: 40, Type: models.TransactionTypeWithdraw, FromUserID: uintPtr(1), Status: models.TransactionStatusCompleted, CreatedAt: base.AddDate(0, 0, 1)},
		{Amount: 25, Type: models.TransactionTypeSendMoney, FromUserID: uintPtr(1), ToUserID: uintPtr(2), Reference: "Rent March", Status: models.TransactionStatusCompleted, CreatedAt: base.AddDate(0, 0, 2)},
		{Amount: 60, Type: models.TransactionTypeSendMoney, FromUserID: uintPtr(2), ToUserID: uintPtr(1), Reference: "refund rent", Status: models.TransactionStatusReversed, CreatedAt: base.AddDate(0, 0, 3)},
		{Amount: 15, Type: models.TransactionTypeCashOut, FromUserID: uintPtr(1), ToUserID: uintPtr(3), Status: models.TransactionStatusPending, CreatedAt: base.AddDate(0, 0, 4)},
		// User 1 is on neither side of this one.
		{Amount: 999, Type: models.TransactionTypeSendMoney, FromUserID: uintPtr(2), ToUserID: uintPtr(3), Status: models.TransactionStatusCompleted, CreatedAt: base.AddDate(0, 0, 5)},
	}
	for i := range txns {
		require.NoError(t, db.Create(&txns[i]).Error)
	}
	return base
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewService(repositories.NewTransactionRepository(db)), db
}

func TestListUserTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("returns both sides newest first", func(t *testing.T) {
		svc, db := newTestService(t)
		seedHistory(t, db)

		page, err := svc.ListUserTransactions(ctx, 1, Filter{})
		require.NoError(t, err)

		require.Len(t, page.Data, 5)
		assert.Equal(t, int64(5), page.Meta.Total)
		for i := 1; i < len(page.Data); i++ {
			assert.False(t, page.Data[i].CreatedAt.After(page.Data[i-1].CreatedAt))
		}
		for _, txn := range page.Data {
			assert.NotEqual(t, int64(999), txn.Amount)
		}
	})

	t.Run("filter by type and status", func(t *testing.T) {
		svc, db := newTestService(t)
		seedHistory(t, db)

		page, err := svc.ListUserTransactions(ctx, 1, Filter{Type: models.TransactionTypeSendMoney})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Meta.Total)

		page, err = svc.ListUserTransactions(ctx, 1, Filter{Status: models.TransactionStatusPending})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, models.TransactionTypeCashOut, page.Data[0].Type)
	})

	t.Run("amount range is inclusive", func(t *testing.T) {
		svc, db := newTestService(t)
		seedHistory(t, db)

		lo, hi := int64(25), int64(60)
		page, err := svc.ListUserTransactions(ctx, 1, Filter{MinAmount: &lo, MaxAmount: &hi})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Meta.Total)
		for _, txn := range page.Data {
			assert.GreaterOrEqual(t, txn.Amount, lo)
			assert.LessOrEqual(t, txn.Amount, hi)
		}
	})

	t.Run("date range", func(t *testing.T) {
		svc, db := newTestService(t)
		base := seedHistory(t, db)

		from := base.AddDate(0, 0, 1)
		to := base.AddDate(0, 0, 3)
		page, err := svc.ListUserTransactions(ctx, 1, Filter{From: &from, To: &to})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Meta.Total)
	})

	t.Run("search is a case-insensitive contains on reference", func(t *testing.T) {
		svc, db := newTestService(t)
		seedHistory(t, db)

		page, err := svc.ListUserTransactions(ctx, 1, Filter{Search: "rent"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Meta.Total)

		page, err = svc.ListUserTransactions(ctx, 1, Filter{Search: "REFUND"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "refund rent", page.Data[0].Reference)
	})

	t.Run("stats cover the whole filtered set", func(t *testing.T) {
		svc, db := newTestService(t)
		seedHistory(t, db)

		page, err := svc.ListUserTransactions(ctx, 1, Filter{Limit: 2})
		require.NoError(t, err)

		stats := page.Meta.Stats
		assert.Equal(t, int64(5), stats.TotalCount)
		assert.Equal(t, int64(240), stats.TotalAmount)
		assert.Equal(t, int64(1), stats.PendingCount)
		assert.Equal(t, int64(3), stats.CompletedCount)
		assert.Equal(t, int64(1), stats.ReversedCount)
	})

	t.Run("pagination", func(t *testing.T) {
		svc, db := newTestService(t)
		seedHistory(t, db)

		page, err := svc.ListUserTransactions(ctx, 1, Filter{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page.Data, 2)
		assert.Equal(t, int64(3), page.Meta.TotalPage)

		page, err = svc.ListUserTransactions(ctx, 1, Filter{Page: 3, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
	})

	t.Run("clamps paging parameters", func(t *testing.T) {
		svc, db := newTestService(t)
		seedHistory(t, db)

		page, err := svc.ListUserTransactions(ctx, 1, Filter{Page: -3, Limit: 5000})
		require.NoError(t, err)
		assert.Equal(t, DefaultPage, page.Meta.Page)
		assert.Equal(t, MaxLimit, page.Meta.Limit)
	})

	t.Run("empty history", func(t *testing.T) {
		svc, _ := newTestService(t)

		page, err := svc.ListUserTransactions(ctx, 9, Filter{})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Equal(t, int64(0), page.Meta.Total)
		assert.Equal(t, int64(0), page.Meta.Stats.TotalCount)
	})
}

func TestGetTransaction(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	txn := models.Transaction{Amount: 10, Type: models.TransactionTypeTopUp, ToUserID: uintPtr(1), Status: models.TransactionStatusCompleted}
	require.NoError(t, db.Create(&txn).Error)

	got, err := svc.GetTransaction(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.ID, got.ID)

	_, err = svc.GetTransaction(ctx, txn.ID+1)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
