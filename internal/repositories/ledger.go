package repositories

import (
	"context"
	"errors"

	"dwallet/internal/models"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrDuplicateWallet     = errors.New("wallet already exists")
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrTransientConflict marks contention at the persistence layer. The
	// whole operation is safe to retry; nothing was committed.
	ErrTransientConflict = errors.New("transient conflict")
)

// LedgerRepository is the durable store for Wallet and Transaction records.
// Balance writes are only valid inside a scope opened with InScope.
type LedgerRepository interface {
	CreateWallet(wallet *models.Wallet) error
	GetWalletByUserID(userID uint) (*models.Wallet, error)
	GetWalletByID(id uint) (*models.Wallet, error)
	SetWalletActive(walletID uint, active bool) (*models.Wallet, error)
	ListWallets(limit, offset int) ([]models.Wallet, int64, error)

	CreateTransaction(txn *models.Transaction) error
	// UpdateTransactionStatus moves a pending transaction to a terminal
	// status. Completed and reversed records are never updated again.
	UpdateTransactionStatus(id uint, status string) error
	ListTransactions(limit, offset int) ([]models.Transaction, int64, error)

	// InScope runs fn inside one atomic scope. All wallet reads and writes
	// performed through the scope commit together or not at all.
	InScope(ctx context.Context, fn func(scope LedgerScope) error) error
}

// LedgerScope is the view of the ledger inside one atomic scope.
type LedgerScope interface {
	// LockWallets resolves and row-locks the wallets of the given users,
	// returning them in argument order. Locks are acquired in ascending
	// user-id order so two transfers touching the same pair in opposite
	// directions cannot deadlock.
	LockWallets(userIDs ...uint) ([]*models.Wallet, error)
	SaveWallet(wallet *models.Wallet) error
	// CreateTransaction writes a transaction record from inside the scope.
	// Where the backend allows it the write bypasses the scope's atomicity,
	// so a failed commit still leaves the record to be marked reversed.
	CreateTransaction(txn *models.Transaction) error
}
