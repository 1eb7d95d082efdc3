package repositories

import "telefood/internal/models"

// CartRepository defines the interface for cart data access. All mutations
// are single-row read-modify-writes on the content document.
type CartRepository interface {
	GetByUserID(userID uint) (*models.Cart, error)
	AppendProduct(userID uint, productID uint) error
	Clear(userID uint) error
}
