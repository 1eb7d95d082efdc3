package repositories

import (
	"errors"
	"fmt"

	"telefood/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUserID retrieves the user's cart. After first contact a cart always
// exists; not-found here means the identity resolver was bypassed.
func (r *GORMCartRepository) GetByUserID(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart for user %d not found: %w", userID, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get cart for user %d: %w", userID, err)
	}
	return &cart, nil
}

// AppendProduct appends a product id to the cart's content document. The
// read-modify-write runs in a transaction; cross-request ordering is provided
// by the bot's sequential update loop, not by row locks.
func (r *GORMCartRepository) AppendProduct(userID uint, productID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.First(&cart, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cart for user %d not found: %w", userID, gorm.ErrRecordNotFound)
			}
			return fmt.Errorf("failed to load cart for user %d: %w", userID, err)
		}
		cart.Content.Products = append(cart.Content.Products, productID)
		if err := tx.Model(&cart).Update("content", cart.Content).Error; err != nil {
			return fmt.Errorf("failed to update cart for user %d: %w", userID, err)
		}
		return nil
	})
}

// Clear replaces the cart content with an empty product list.
func (r *GORMCartRepository) Clear(userID uint) error {
	res := r.db.Model(&models.Cart{}).Where("user_id = ?", userID).Update("content", models.EmptyContent())
	if res.Error != nil {
		return fmt.Errorf("failed to clear cart for user %d: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart for user %d not found: %w", userID, gorm.ErrRecordNotFound)
	}
	return nil
}
