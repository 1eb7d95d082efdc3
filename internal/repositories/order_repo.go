package repositories

import "telefood/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error) // newest first
	// Checkout snapshots the user's cart into a new order and resets the
	// cart in one atomic unit. A (nil, nil) result means the cart was empty
	// and no order was created.
	Checkout(userID uint) (*models.Order, error)
	UpdateReview(id uint, review string) error
	UpdatePaid(id uint, paid bool) error
}
