package models

import (
	"time"
)

// User roles
const (
	RoleUser  = "USER"
	RoleAgent = "AGENT"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID         uint   `gorm:"primarykey"`
	Name       string `gorm:"not null"`
	Email      string `gorm:"uniqueIndex;not null"`
	Password   string `gorm:"not null" json:"-"`
	Role       string `gorm:"not null;default:'USER'"`
	IsApproved bool   `gorm:"not null;default:false"` // agents only
	IsActive   bool   `gorm:"not null;default:true"`
	IsVerified bool   `gorm:"not null;default:false"`
	IsDeleted  bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WalletEligible reports whether accounts with this role carry a wallet.
// Admin accounts never do.
func (u *User) WalletEligible() bool {
	return u.Role == RoleUser || u.Role == RoleAgent
}
