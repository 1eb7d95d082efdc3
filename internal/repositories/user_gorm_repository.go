package repositories

import (
	"errors"
	"fmt"

	"telefood/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetByTelegramID retrieves a user by their Telegram identity.
func (r *GORMUserRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "telegram_id = ?", telegramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with telegram id %d not found: %w", telegramID, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get user by telegram id %d: %w", telegramID, err)
	}
	return &user, nil
}

// CreateWithCart creates the user together with their empty cart. Both rows
// are written in one transaction so a user can never exist without a cart.
func (r *GORMUserRepository) CreateWithCart(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		cart := models.Cart{UserID: user.ID, Content: models.EmptyContent()}
		if err := tx.Create(&cart).Error; err != nil {
			return fmt.Errorf("failed to create cart for user %d: %w", user.ID, err)
		}
		return nil
	})
}

// UpdateName overwrites the stored display name.
func (r *GORMUserRepository) UpdateName(id uint, name string) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return fmt.Errorf("failed to update name for user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with id %d not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
