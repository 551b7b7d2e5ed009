package transfer

import (
	"context"
	"errors"

	"dwallet/internal/models"
	"dwallet/internal/repositories"
)

type service struct {
	repo    repositories.LedgerRepository
	cache   Invalidator
	metrics MetricsCollector
}

// NewService creates the transfer engine. Cache and metrics are optional.
func NewService(repo repositories.LedgerRepository, cache Invalidator, metrics MetricsCollector) Service {
	if repo == nil {
		panic("ledger repository is required")
	}
	if cache == nil {
		cache = noopInvalidator{}
	}
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	return &service{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

// legSpec describes one two-leg transfer. A nil debit or credit user turns
// that leg into a null counterparty (top-up, withdraw).
type legSpec struct {
	txType     string
	debitUser  *uint
	creditUser *uint
	amount     int64
	reference  string
	debitType  string // required wallet type for the debit leg, "" = any
	creditType string
}

func (s *service) TopUp(ctx context.Context, userID uint, amount int64) (*models.Wallet, error) {
	result, err := s.run(ctx, legSpec{
		txType:     models.TransactionTypeTopUp,
		creditUser: &userID,
		amount:     amount,
		creditType: models.WalletTypeUser,
	})
	if err != nil {
		return nil, err
	}
	return result.ToWallet, nil
}

func (s *service) Withdraw(ctx context.Context, userID uint, amount int64) (*models.Wallet, error) {
	result, err := s.run(ctx, legSpec{
		txType:    models.TransactionTypeWithdraw,
		debitUser: &userID,
		amount:    amount,
		debitType: models.WalletTypeUser,
	})
	if err != nil {
		return nil, err
	}
	return result.FromWallet, nil
}

func (s *service) CashIn(ctx context.Context, agentUserID, targetUserID uint, amount int64, reference string) (*Result, error) {
	return s.run(ctx, legSpec{
		txType:     models.TransactionTypeCashIn,
		debitUser:  &agentUserID,
		creditUser: &targetUserID,
		amount:     amount,
		reference:  reference,
		debitType:  models.WalletTypeAgent,
		creditType: models.WalletTypeUser,
	})
}

func (s *service) CashOut(ctx context.Context, agentUserID, targetUserID uint, amount int64, reference string) (*Result, error) {
	return s.run(ctx, legSpec{
		txType:     models.TransactionTypeCashOut,
		debitUser:  &targetUserID,
		creditUser: &agentUserID,
		amount:     amount,
		reference:  reference,
		debitType:  models.WalletTypeUser,
		creditType: models.WalletTypeAgent,
	})
}

func (s *service) SendMoney(ctx context.Context, fromUserID, toUserID uint, amount int64, reference string) (*Result, error) {
	return s.run(ctx, legSpec{
		txType:     models.TransactionTypeSendMoney,
		debitUser:  &fromUserID,
		creditUser: &toUserID,
		amount:     amount,
		reference:  reference,
		debitType:  models.WalletTypeUser,
		creditType: models.WalletTypeUser,
	})
}

// run executes the two-leg transfer skeleton described in the package
// documentation.
func (s *service) run(ctx context.Context, spec legSpec) (*Result, error) {
	if spec.amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if spec.debitUser != nil && spec.creditUser != nil && *spec.debitUser == *spec.creditUser {
		return nil, ErrInvalidOperation
	}

	var (
		pending      *models.Transaction
		debitWallet  *models.Wallet
		creditWallet *models.Wallet
	)

	err := s.repo.InScope(ctx, func(scope repositories.LedgerScope) error {
		userIDs := make([]uint, 0, 2)
		if spec.debitUser != nil {
			userIDs = append(userIDs, *spec.debitUser)
		}
		if spec.creditUser != nil {
			userIDs = append(userIDs, *spec.creditUser)
		}

		wallets, err := scope.LockWallets(userIDs...)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrWalletNotFound
			}
			return err
		}

		i := 0
		if spec.debitUser != nil {
			debitWallet = wallets[i]
			i++
		}
		if spec.creditUser != nil {
			creditWallet = wallets[i]
		}

		if err := requireWalletType(debitWallet, spec.debitType); err != nil {
			return err
		}
		if err := requireWalletType(creditWallet, spec.creditType); err != nil {
			return err
		}

		// Debit first: a failed balance check aborts the scope before any
		// transaction record exists.
		if debitWallet != nil {
			if err := applyDelta(debitWallet, -spec.amount); err != nil {
				return err
			}
		}
		if creditWallet != nil {
			if err := applyDelta(creditWallet, spec.amount); err != nil {
				return err
			}
		}

		for _, wallet := range wallets {
			if err := scope.SaveWallet(wallet); err != nil {
				return err
			}
		}

		// Written outside the scope's atomicity where the backend allows
		// it: if the commit fails the pending record survives and is
		// marked reversed below.
		pending = &models.Transaction{
			Amount:     spec.amount,
			Type:       spec.txType,
			FromUserID: spec.debitUser,
			ToUserID:   spec.creditUser,
			Reference:  spec.reference,
			Status:     models.TransactionStatusPending,
		}
		return scope.CreateTransaction(pending)
	})

	if err != nil {
		s.reverse(pending)
		s.metrics.RecordError(spec.txType, err.Error())
		return nil, err
	}

	if err := s.repo.UpdateTransactionStatus(pending.ID, models.TransactionStatusCompleted); err != nil {
		s.reverse(pending)
		s.metrics.RecordError(spec.txType, err.Error())
		return nil, err
	}
	pending.Status = models.TransactionStatusCompleted

	for _, wallet := range []*models.Wallet{debitWallet, creditWallet} {
		if wallet != nil {
			s.cache.InvalidateWallet(ctx, wallet.UserID)
		}
	}
	s.metrics.RecordTransaction(spec.txType, spec.amount)

	return &Result{
		FromWallet:  debitWallet,
		ToWallet:    creditWallet,
		Transaction: pending,
	}, nil
}

// reverse marks a persisted pending transaction as reversed. The original
// failure always wins; a reversal error only surfaces in metrics.
func (s *service) reverse(pending *models.Transaction) {
	if pending == nil || pending.ID == 0 {
		return
	}
	if err := s.repo.UpdateTransactionStatus(pending.ID, models.TransactionStatusReversed); err != nil {
		s.metrics.RecordError("reverse", err.Error())
		return
	}
	pending.Status = models.TransactionStatusReversed
}
