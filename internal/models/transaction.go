package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeTopUp     = "top_up"
	TransactionTypeWithdraw  = "withdraw"
	TransactionTypeCashIn    = "cash_in"
	TransactionTypeCashOut   = "cash_out"
	TransactionTypeSendMoney = "send_money"
	TransactionTypePayment   = "payment"
	TransactionTypeAddMoney  = "add_money"
	TransactionTypeRefund    = "refund"
)

// Transaction statuses. Pending is the only initial state; completed and
// reversed are terminal.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusReversed  = "reversed"
)

// Transaction records one ledger movement. From/To are user references and
// either side may be nil for single-leg operations (top-up has no source,
// withdraw has no destination).
type Transaction struct {
	ID         uint   `gorm:"primarykey"`
	Amount     int64  `gorm:"not null"`
	Type       string `gorm:"not null"`
	FromUserID *uint  `gorm:"index"`
	ToUserID   *uint  `gorm:"index"`
	Reference  string
	Status     string    `gorm:"not null;default:'pending';index"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}
