package repositories

import (
	"errors"
	"fmt"
	"time"

	"telefood/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders, newest first.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its id.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with id %d not found: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get order by id %d: %w", id, err)
	}
	return &order, nil
}

// GetByUserID retrieves the user's orders, newest first.
func (r *GORMOrderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("id desc").Find(&orders, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// Checkout snapshots the user's cart into a new order and resets the cart.
// Both writes happen in one transaction: either the order exists and the cart
// is empty, or neither change is visible. A missing or empty cart yields
// (nil, nil) - the normal "nothing to order" outcome, not a failure.
func (r *GORMOrderRepository) Checkout(userID uint) (*models.Order, error) {
	var order *models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.First(&cart, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load cart for user %d: %w", userID, err)
		}
		if cart.Content.IsEmpty() {
			return nil
		}
		newOrder := models.Order{
			UserID:    userID,
			Content:   cart.Content.Clone(),
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.Create(&newOrder).Error; err != nil {
			return fmt.Errorf("failed to create order for user %d: %w", userID, err)
		}
		if err := tx.Model(&cart).Update("content", models.EmptyContent()).Error; err != nil {
			return fmt.Errorf("failed to reset cart for user %d: %w", userID, err)
		}
		order = &newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateReview overwrites the order's review text unconditionally.
func (r *GORMOrderRepository) UpdateReview(id uint, review string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("review", review)
	if res.Error != nil {
		return fmt.Errorf("failed to update review for order %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with id %d not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// UpdatePaid sets the order's paid flag.
func (r *GORMOrderRepository) UpdatePaid(id uint, paid bool) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("paid", paid)
	if res.Error != nil {
		return fmt.Errorf("failed to update paid flag for order %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with id %d not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
