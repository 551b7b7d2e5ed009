// Package wallet manages wallet lifecycle: creation on user signup,
// deactivation on user deletion, admin status toggles and cached reads.
// Balances are only ever mutated by the transfer engine.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"dwallet/internal/models"
	"dwallet/internal/repositories"
)

// Cache is the read-side wallet cache. Optional.
type Cache interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, bool, error)
	CacheWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, userID uint) error
}

type Service interface {
	// CreateWallet provisions the single wallet a USER or AGENT account
	// owns, opening with the signup bonus. Admin accounts never get one.
	CreateWallet(ctx context.Context, userID uint, role string) (*models.Wallet, error)
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	// DeactivateWallet soft-disables the wallet when its owner is deleted.
	// The balance is kept.
	DeactivateWallet(ctx context.Context, userID uint) error
	// SetWalletStatus is the admin toggle, addressed by wallet id.
	SetWalletStatus(ctx context.Context, walletID uint, active bool) (*models.Wallet, error)
	ListWallets(ctx context.Context, limit, offset int) ([]models.Wallet, int64, error)
}

type service struct {
	repo  repositories.LedgerRepository
	cache Cache
}

func NewService(repo repositories.LedgerRepository, cache Cache) Service {
	if repo == nil {
		panic("ledger repository is required")
	}
	if cache == nil {
		cache = noopCache{}
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) CreateWallet(ctx context.Context, userID uint, role string) (*models.Wallet, error) {
	if role != models.RoleUser && role != models.RoleAgent {
		return nil, ErrRoleNotEligible
	}

	wallet := &models.Wallet{
		UserID:   userID,
		Balance:  models.SignupBonus,
		Type:     role,
		IsActive: true,
	}
	if err := s.repo.CreateWallet(wallet); err != nil {
		if errors.Is(err, repositories.ErrDuplicateWallet) {
			return nil, ErrWalletAlreadyExists
		}
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	s.cache.CacheWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	if cached, found, err := s.cache.GetWallet(ctx, userID); err == nil && found {
		return cached, nil
	}

	wallet, err := s.repo.GetWalletByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	s.cache.CacheWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) DeactivateWallet(ctx context.Context, userID uint) error {
	wallet, err := s.repo.GetWalletByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return ErrWalletNotFound
		}
		return fmt.Errorf("failed to get wallet: %w", err)
	}

	if _, err := s.repo.SetWalletActive(wallet.ID, false); err != nil {
		return fmt.Errorf("failed to deactivate wallet: %w", err)
	}
	s.cache.InvalidateWallet(ctx, userID)
	return nil
}

func (s *service) SetWalletStatus(ctx context.Context, walletID uint, active bool) (*models.Wallet, error) {
	wallet, err := s.repo.SetWalletActive(walletID, active)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to update wallet status: %w", err)
	}

	s.cache.InvalidateWallet(ctx, wallet.UserID)
	return wallet, nil
}

func (s *service) ListWallets(ctx context.Context, limit, offset int) ([]models.Wallet, int64, error) {
	return s.repo.ListWallets(limit, offset)
}

type noopCache struct{}

func (noopCache) GetWallet(context.Context, uint) (*models.Wallet, bool, error) {
	return nil, false, nil
}
func (noopCache) CacheWallet(context.Context, *models.Wallet) error    { return nil }
func (noopCache) InvalidateWallet(context.Context, uint) error         { return nil }
