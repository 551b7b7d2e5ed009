// Package user handles user lifecycle. Creating a USER or AGENT account
// synchronously provisions its wallet; soft-deleting an account deactivates
// the wallet without touching the balance.
package user

import (
	"context"
	"errors"
	"fmt"

	"dwallet/internal/models"
	"dwallet/internal/repositories"
	"dwallet/internal/services/wallet"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidRole  = errors.New("invalid role")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	// SoftDeleteUser marks the account deleted and deactivates its wallet.
	SoftDeleteUser(ctx context.Context, id uint) error
	SetAgentApproval(ctx context.Context, agentID uint, approved bool) (*models.User, error)
	ListUsers(ctx context.Context, role string, limit, offset int) ([]models.User, int64, error)
}

type service struct {
	repo      repositories.UserRepository
	walletSvc wallet.Service
}

func NewService(repo repositories.UserRepository, walletSvc wallet.Service) Service {
	if repo == nil {
		panic("user repository is required")
	}
	if walletSvc == nil {
		panic("wallet service is required")
	}
	return &service{repo: repo, walletSvc: walletSvc}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAgent {
		return nil, ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
		// Agents start approved; an admin can suspend them later.
		IsApproved: role == models.RoleAgent,
	}
	if err := s.repo.Create(newUser); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if newUser.WalletEligible() {
		if _, err := s.walletSvc.CreateWallet(ctx, newUser.ID, newUser.Role); err != nil {
			return nil, fmt.Errorf("failed to create wallet for user %d: %w", newUser.ID, err)
		}
	}

	return newUser, nil
}

func (s *service) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (s *service) SoftDeleteUser(ctx context.Context, id uint) error {
	u, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	u.IsDeleted = true
	u.IsActive = false
	if err := s.repo.Update(u); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := s.walletSvc.DeactivateWallet(ctx, u.ID); err != nil {
		// Admin accounts have no wallet.
		if !errors.Is(err, wallet.ErrWalletNotFound) {
			return fmt.Errorf("failed to deactivate wallet for user %d: %w", u.ID, err)
		}
	}
	return nil
}

func (s *service) SetAgentApproval(ctx context.Context, agentID uint, approved bool) (*models.User, error) {
	u, err := s.repo.GetByID(agentID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if u.Role != models.RoleAgent {
		return nil, ErrInvalidRole
	}

	u.IsApproved = approved
	if err := s.repo.Update(u); err != nil {
		return nil, fmt.Errorf("failed to update agent approval: %w", err)
	}
	return u, nil
}

func (s *service) ListUsers(ctx context.Context, role string, limit, offset int) ([]models.User, int64, error) {
	return s.repo.ListByRole(role, limit, offset)
}
