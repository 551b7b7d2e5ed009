package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"dwallet/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateWallet(wallet *models.Wallet) error {
	if err := r.db.Create(wallet).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateWallet
		}
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetWalletByUserID(userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *ledgerRepository) GetWalletByID(id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *ledgerRepository) SetWalletActive(walletID uint, active bool) (*models.Wallet, error) {
	result := r.db.Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Update("is_active", active)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update wallet status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrWalletNotFound
	}
	return r.GetWalletByID(walletID)
}

func (r *ledgerRepository) ListWallets(limit, offset int) ([]models.Wallet, int64, error) {
	var wallets []models.Wallet
	var total int64

	if err := r.db.Model(&models.Wallet{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count wallets: %w", err)
	}
	if err := r.db.Order("id").Limit(limit).Offset(offset).Find(&wallets).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, total, nil
}

func (r *ledgerRepository) CreateTransaction(txn *models.Transaction) error {
	if err := r.db.Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *ledgerRepository) UpdateTransactionStatus(id uint, status string) error {
	// The status guard makes the transition one-directional: only pending
	// records can move, and only to a terminal status.
	result := r.db.Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, models.TransactionStatusPending).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *ledgerRepository) ListTransactions(limit, offset int) ([]models.Transaction, int64, error) {
	var txns []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	if err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&txns).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, total, nil
}

func (r *ledgerRepository) InScope(ctx context.Context, fn func(scope LedgerScope) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerScope{tx: tx, root: r.db.WithContext(ctx)})
	})
	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", ErrTransientConflict, err)
	}
	return err
}

type ledgerScope struct {
	tx   *gorm.DB
	root *gorm.DB
}

func (s *ledgerScope) LockWallets(userIDs ...uint) ([]*models.Wallet, error) {
	ordered := append([]uint(nil), userIDs...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	byUser := make(map[uint]*models.Wallet, len(ordered))
	for _, userID := range ordered {
		var wallet models.Wallet
		q := s.tx
		// SQLite has no row locks; its single-writer model already
		// serializes concurrent scopes.
		if s.tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrWalletNotFound
			}
			return nil, fmt.Errorf("failed to lock wallet for user %d: %w", userID, err)
		}
		byUser[userID] = &wallet
	}

	wallets := make([]*models.Wallet, len(userIDs))
	for i, userID := range userIDs {
		wallets[i] = byUser[userID]
	}
	return wallets, nil
}

func (s *ledgerScope) CreateTransaction(txn *models.Transaction) error {
	// Postgres accepts the write on a separate connection while the scope
	// is still open. SQLite's single writer cannot, so there the record
	// rides the scope and a rollback removes it too.
	handle := s.tx
	if s.tx.Dialector.Name() == "postgres" {
		handle = s.root
	}
	if err := handle.Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (s *ledgerScope) SaveWallet(wallet *models.Wallet) error {
	if err := s.tx.Save(wallet).Error; err != nil {
		return fmt.Errorf("failed to save wallet: %w", err)
	}
	return nil
}

// sqlState extracts the SQLSTATE code from a driver error, if any.
func sqlState(err error) string {
	var coded interface{ SQLState() string }
	if errors.As(err, &coded) {
		return coded.SQLState()
	}
	return ""
}

func isUniqueViolation(err error) bool {
	if sqlState(err) == "23505" {
		return true
	}
	// SQLite reports constraint violations as plain errors.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isSerializationFailure matches SQLSTATE class 40 (serialization failure,
// deadlock detected). These abort the scope but are safe to retry.
func isSerializationFailure(err error) bool {
	state := sqlState(err)
	return len(state) == 5 && strings.HasPrefix(state, "40")
}
