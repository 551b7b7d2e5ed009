// Package transaction is the read side of the ledger: filtered, paginated
// listings of a user's transaction history with aggregate stats. It only
// observes committed data; in-flight pending transfers may be missed.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"dwallet/internal/models"
	"dwallet/internal/repositories"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type Service interface {
	ListUserTransactions(ctx context.Context, userID uint, filter Filter) (*Page, error)
	GetTransaction(ctx context.Context, id uint) (*models.Transaction, error)
}

type service struct {
	repo repositories.TransactionRepository
}

func NewService(repo repositories.TransactionRepository) Service {
	if repo == nil {
		panic("transaction repository is required")
	}
	return &service{repo: repo}
}

func (s *service) ListUserTransactions(ctx context.Context, userID uint, filter Filter) (*Page, error) {
	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	repoFilter := repositories.TransactionFilter{
		Type:      filter.Type,
		Status:    filter.Status,
		MinAmount: filter.MinAmount,
		MaxAmount: filter.MaxAmount,
		From:      filter.From,
		To:        filter.To,
		Search:    filter.Search,
		Limit:     filter.Limit,
		Offset:    (filter.Page - 1) * filter.Limit,
	}

	data, total, err := s.repo.ListByUser(ctx, userID, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	stats, err := s.repo.StatsByUser(ctx, userID, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction stats: %w", err)
	}

	totalPage := total / int64(filter.Limit)
	if total%int64(filter.Limit) > 0 {
		totalPage++
	}

	return &Page{
		Data: data,
		Meta: Meta{
			Page:      filter.Page,
			Limit:     filter.Limit,
			Total:     total,
			TotalPage: totalPage,
			Stats:     *stats,
		},
	}, nil
}

func (s *service) GetTransaction(ctx context.Context, id uint) (*models.Transaction, error) {
	txn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}
