package handlers

import (
	"strconv"
	"time"

	"dwallet/internal/services/transaction"
	"dwallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	transactionService transaction.Service
}

func NewTransactionHandler(transactionService transaction.Service) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListMyTransactions returns the caller's transaction history, filtered and
// paginated, with aggregate stats over the filtered set.
func (h *TransactionHandler) ListMyTransactions(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	page, err := h.transactionService.ListUserTransactions(c.Context(), claims.UserID, filter)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Transactions retrieved successfully", page)
}

func parseTransactionFilter(c *fiber.Ctx) (transaction.Filter, error) {
	filter := transaction.Filter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit", "10"))

	if raw := c.Query("minAmount"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "invalid minAmount")
		}
		filter.MinAmount = &v
	}
	if raw := c.Query("maxAmount"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "invalid maxAmount")
		}
		filter.MaxAmount = &v
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "invalid from date")
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "invalid to date")
		}
		filter.To = &t
	}
	return filter, nil
}
