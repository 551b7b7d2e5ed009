package transaction

import (
	"time"

	"dwallet/internal/models"
	"dwallet/internal/repositories"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filter is the caller-facing filter set for a transaction listing.
// Type and status match exactly, amount and date ranges are inclusive, and
// Search is a case-insensitive contains over the reference field.
type Filter struct {
	Type      string
	Status    string
	MinAmount *int64
	MaxAmount *int64
	From      *time.Time
	To        *time.Time
	Search    string
	Page      int
	Limit     int
}

// Page is one page of a user's transaction history plus aggregates over the
// whole filtered set.
type Page struct {
	Data []models.Transaction `json:"data"`
	Meta Meta                 `json:"meta"`
}

type Meta struct {
	Page      int                            `json:"page"`
	Limit     int                            `json:"limit"`
	Total     int64                          `json:"total"`
	TotalPage int64                          `json:"totalPage"`
	Stats     repositories.TransactionStats `json:"stats"`
}
