package handlers

import (
	"strconv"

	"dwallet/internal/repositories"
	"dwallet/internal/services/user"
	"dwallet/internal/services/wallet"
	"dwallet/internal/utils/pagination"
	"dwallet/internal/utils/response"
	"dwallet/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes audit and management endpoints: wallet/transaction
// listings, wallet status toggles, agent approval and user soft-deletes.
type AdminHandler struct {
	users   user.Service
	wallets wallet.Service
	ledger  repositories.LedgerRepository
}

func NewAdminHandler(users user.Service, wallets wallet.Service, ledger repositories.LedgerRepository) *AdminHandler {
	return &AdminHandler{
		users:   users,
		wallets: wallets,
		ledger:  ledger,
	}
}

// ListUsers returns all accounts, optionally narrowed by role.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	users, total, err := h.users.ListUsers(c.Context(), c.Query("role"), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, users))
}

func (h *AdminHandler) ListWallets(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	wallets, total, err := h.wallets.ListWallets(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, wallets))
}

func (h *AdminHandler) ListTransactions(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	txns, total, err := h.ledger.ListTransactions(p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, txns))
}

type walletStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

func (h *AdminHandler) SetWalletStatus(c *fiber.Ctx) error {
	walletID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid wallet id")
	}

	var input walletStatusRequest
	if err := validation.ParseAndValidate(c, &input); err != nil {
		return err
	}

	w, err := h.wallets.SetWalletStatus(c.Context(), uint(walletID), *input.Active)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Wallet status updated successfully", w)
}

type agentApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

func (h *AdminHandler) SetAgentApproval(c *fiber.Ctx) error {
	agentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid agent id")
	}

	var input agentApprovalRequest
	if err := validation.ParseAndValidate(c, &input); err != nil {
		return err
	}

	u, err := h.users.SetAgentApproval(c.Context(), uint(agentID), *input.Approved)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Agent approval updated successfully", u)
}

// DeleteUser soft-deletes a user and deactivates their wallet.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid user id")
	}

	if err := h.users.SoftDeleteUser(c.Context(), uint(userID)); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "User deleted successfully", nil)
}
