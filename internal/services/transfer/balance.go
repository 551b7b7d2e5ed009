package transfer

import (
	"dwallet/internal/models"
)

// applyDelta is the balance mutator: it adjusts a single locked wallet's
// balance in place. Negative deltas must not take the balance below zero; a
// delta that lands exactly on zero succeeds. Must only be called on wallets
// held by the current ledger scope.
func applyDelta(wallet *models.Wallet, delta int64) error {
	if wallet == nil {
		return ErrWalletNotFound
	}
	if !wallet.IsActive {
		return ErrWalletInactive
	}
	if delta < 0 && wallet.Balance+delta < 0 {
		return ErrInsufficientBalance
	}
	wallet.Balance += delta
	return nil
}

// requireWalletType enforces an operation's role constraint on one leg.
// An empty requirement accepts any wallet type.
func requireWalletType(wallet *models.Wallet, walletType string) error {
	if wallet == nil || walletType == "" {
		return nil
	}
	if wallet.Type != walletType {
		return ErrWrongWalletType
	}
	return nil
}
