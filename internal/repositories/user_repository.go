package repositories

import "telefood/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetByTelegramID(telegramID int64) (*models.User, error)
	// CreateWithCart persists the user together with an attached empty cart
	// in one atomic unit; a user row must never exist without a cart row.
	CreateWithCart(user *models.User) error
	UpdateName(id uint, name string) error
}
