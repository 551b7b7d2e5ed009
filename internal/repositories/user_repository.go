package repositories

import (
	"errors"

	"dwallet/internal/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository covers the user records the wallet core references. The
// core only reads id and role; lifecycle writes come from the user service.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	ListByRole(role string, limit, offset int) ([]models.User, int64, error)
}
