package wallet

import "errors"

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrWalletAlreadyExists = errors.New("wallet already exists for this user")
	ErrRoleNotEligible     = errors.New("role does not carry a wallet")
)
