package handlers

import (
	"dwallet/internal/models"
	"dwallet/internal/services/transfer"
	"dwallet/internal/services/wallet"
	"dwallet/internal/utils/response"
	"dwallet/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService   wallet.Service
	transferService transfer.Service
}

func NewWalletHandler(walletService wallet.Service, transferService transfer.Service) *WalletHandler {
	return &WalletHandler{
		walletService:   walletService,
		transferService: transferService,
	}
}

// extractUserClaims pulls the authenticated caller identity set by the auth
// middleware.
func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

type amountRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type transferRequest struct {
	ToUserID  uint   `json:"toUserId" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Reference string `json:"reference"`
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	w, err := h.walletService.GetWallet(c.Context(), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Wallet retrieved successfully", w)
}

func (h *WalletHandler) TopUp(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input amountRequest
	if err := validation.ParseAndValidate(c, &input); err != nil {
		return err
	}

	w, err := h.transferService.TopUp(c.Context(), claims.UserID, input.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Top-up successful", w)
}

func (h *WalletHandler) Withdraw(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input amountRequest
	if err := validation.ParseAndValidate(c, &input); err != nil {
		return err
	}

	w, err := h.transferService.Withdraw(c.Context(), claims.UserID, input.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Withdraw successful", w)
}

func (h *WalletHandler) CashIn(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input transferRequest
	if err := validation.ParseAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.transferService.CashIn(c.Context(), claims.UserID, input.ToUserID, input.Amount, input.Reference)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Cash-in successful", result)
}

func (h *WalletHandler) CashOut(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input transferRequest
	if err := validation.ParseAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.transferService.CashOut(c.Context(), claims.UserID, input.ToUserID, input.Amount, input.Reference)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Cash-out successful", result)
}

func (h *WalletHandler) SendMoney(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input transferRequest
	if err := validation.ParseAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.transferService.SendMoney(c.Context(), claims.UserID, input.ToUserID, input.Amount, input.Reference)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Money sent successfully", result)
}
