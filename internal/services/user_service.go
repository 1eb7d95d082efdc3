package services

import (
	"errors"
	"fmt"

	"telefood/internal/models"
	"telefood/internal/repositories"

	"gorm.io/gorm"
)

// UserService resolves Telegram identities to store users.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Resolve returns the user for the given Telegram identity, creating the user
// together with an empty cart on first contact. A changed display name
// overwrites the stored one; last write wins, no audit trail.
func (s *UserService) Resolve(telegramID int64, name string) (*models.User, error) {
	user, err := s.userRepo.GetByTelegramID(telegramID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = &models.User{TelegramID: telegramID, Name: name}
		if err := s.userRepo.CreateWithCart(user); err != nil {
			return nil, fmt.Errorf("failed to resolve user %d: %w", telegramID, err)
		}
		return user, nil
	}
	if name != "" && user.Name != name {
		if err := s.userRepo.UpdateName(user.ID, name); err != nil {
			return nil, err
		}
		user.Name = name
	}
	return user, nil
}
