package transfer

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidOperation    = errors.New("cannot transfer to the same wallet")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrWalletInactive      = errors.New("wallet is inactive")
	ErrWrongWalletType     = errors.New("wallet type not allowed for this operation")
)
