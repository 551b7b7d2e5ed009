package models

import (
	"time"
)

// Wallet types mirror the owning user's role. Admin accounts have no wallet.
const (
	WalletTypeUser  = "USER"
	WalletTypeAgent = "AGENT"
)

// SignupBonus is the opening balance, in minor units, credited to every
// newly created wallet.
const SignupBonus int64 = 50

// Wallet holds a user's balance in minor units. Balance is never negative;
// the transfer engine enforces the invariant before every write and the
// check constraint backs it up at the database level.
type Wallet struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	Balance   int64  `gorm:"not null;default:0;check:balance >= 0"`
	Type      string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
