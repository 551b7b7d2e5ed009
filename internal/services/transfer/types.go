package transfer

import (
	"context"

	"dwallet/internal/models"
)

// Service is the transfer engine. Callers are already authenticated; role
// constraints on the involved wallets are still enforced here.
type Service interface {
	TopUp(ctx context.Context, userID uint, amount int64) (*models.Wallet, error)
	Withdraw(ctx context.Context, userID uint, amount int64) (*models.Wallet, error)
	CashIn(ctx context.Context, agentUserID, targetUserID uint, amount int64, reference string) (*Result, error)
	CashOut(ctx context.Context, agentUserID, targetUserID uint, amount int64, reference string) (*Result, error)
	SendMoney(ctx context.Context, fromUserID, toUserID uint, amount int64, reference string) (*Result, error)
}

// Result carries the updated wallet snapshots and the completed transaction
// record of a two-leg transfer.
type Result struct {
	FromWallet  *models.Wallet      `json:"fromWallet"`
	ToWallet    *models.Wallet      `json:"toWallet"`
	Transaction *models.Transaction `json:"transaction"`
}

// Invalidator drops read-side cache entries after a balance mutation.
type Invalidator interface {
	InvalidateWallet(ctx context.Context, userID uint) error
}

// MetricsCollector records transfer outcomes.
type MetricsCollector interface {
	RecordTransaction(txType string, amount int64)
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTransaction(string, int64) {}
func (NoopMetricsCollector) RecordError(string, string)      {}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateWallet(context.Context, uint) error { return nil }
