package repositories

import (
	"context"
	"errors"
	"fmt"

	"dwallet/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.WithContext(ctx).First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uint, filter TransactionFilter) ([]models.Transaction, int64, error) {
	query := r.filtered(ctx, userID, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var txns []models.Transaction
	err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&txns).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, total, nil
}

func (r *transactionRepository) StatsByUser(ctx context.Context, userID uint, filter TransactionFilter) (*TransactionStats, error) {
	var stats TransactionStats
	err := r.filtered(ctx, userID, filter).
		Select(`
			COALESCE(SUM(amount), 0) as total_amount,
			COUNT(*) as total_count,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) as pending_count,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) as completed_count,
			COALESCE(SUM(CASE WHEN status = 'reversed' THEN 1 ELSE 0 END), 0) as reversed_count
		`).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction stats: %w", err)
	}
	return &stats, nil
}

func (r *transactionRepository) filtered(ctx context.Context, userID uint, filter TransactionFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", *filter.MaxAmount)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}
	if filter.Search != "" {
		// Case-insensitive contains, portable across Postgres and SQLite.
		query = query.Where("LOWER(reference) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	return query
}
