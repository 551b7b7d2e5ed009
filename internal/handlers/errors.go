package handlers

import (
	"errors"

	"dwallet/internal/repositories"
	"dwallet/internal/services/auth"
	"dwallet/internal/services/transaction"
	"dwallet/internal/services/transfer"
	"dwallet/internal/services/user"
	"dwallet/internal/services/wallet"
	"dwallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors to HTTP statuses. Unknown errors become
// opaque 500s so internals never leak to callers.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, transfer.ErrInvalidAmount),
		errors.Is(err, transfer.ErrInvalidOperation),
		errors.Is(err, transfer.ErrWalletInactive),
		errors.Is(err, transfer.ErrInsufficientBalance),
		errors.Is(err, wallet.ErrRoleNotEligible),
		errors.Is(err, user.ErrInvalidRole):
		return response.BadRequest(c, err.Error())

	case errors.Is(err, transfer.ErrWalletNotFound),
		errors.Is(err, wallet.ErrWalletNotFound),
		errors.Is(err, transaction.ErrTransactionNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return response.NotFound(c, err.Error())

	case errors.Is(err, wallet.ErrWalletAlreadyExists),
		errors.Is(err, user.ErrUserExists),
		errors.Is(err, repositories.ErrTransientConflict):
		return response.Conflict(c, err.Error())

	case errors.Is(err, transfer.ErrWrongWalletType),
		errors.Is(err, auth.ErrAccountDisabled):
		return response.Forbidden(c, err.Error())

	case errors.Is(err, auth.ErrInvalidCredentials):
		return response.Error(c, fiber.StatusUnauthorized, err.Error())

	default:
		return response.ServerError(c, "internal server error")
	}
}
