package repositories

import (
	"context"
	"time"

	"dwallet/internal/models"
)

// TransactionFilter narrows a user's transaction history. Zero values mean
// "no constraint"; amount and date ranges are inclusive.
type TransactionFilter struct {
	Type      string
	Status    string
	MinAmount *int64
	MaxAmount *int64
	From      *time.Time
	To        *time.Time
	Search    string
	Limit     int
	Offset    int
}

// TransactionStats aggregates the same filtered set a listing returns.
type TransactionStats struct {
	TotalAmount    int64 `json:"totalAmount"`
	TotalCount     int64 `json:"totalCount"`
	PendingCount   int64 `json:"pendingCount"`
	CompletedCount int64 `json:"completedCount"`
	ReversedCount  int64 `json:"reversedCount"`
}

// TransactionRepository is the read side of the ledger. It only ever sees
// committed data.
type TransactionRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	// ListByUser returns the user's transactions (either side of the leg),
	// newest first, with the total row count for pagination.
	ListByUser(ctx context.Context, userID uint, filter TransactionFilter) ([]models.Transaction, int64, error)
	// StatsByUser computes aggregates over the same filtered set, ignoring
	// the filter's pagination.
	StatsByUser(ctx context.Context, userID uint, filter TransactionFilter) (*TransactionStats, error)
}
