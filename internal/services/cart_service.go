package services

import (
	"telefood/internal/models"
	"telefood/internal/repositories"
)

// CartService handles cart mutations for bot users.
type CartService struct {
	cartRepo    repositories.CartRepository
	catalogRepo repositories.CatalogRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, catalogRepo repositories.CatalogRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

// Get retrieves the user's cart.
func (s *CartService) Get(userID uint) (*models.Cart, error) {
	return s.cartRepo.GetByUserID(userID)
}

// AddProduct appends a product id to the cart. The product is verified to
// still exist: a menu button can reference an item the admin has replaced
// since the message was sent.
func (s *CartService) AddProduct(userID uint, productID uint) error {
	if _, err := s.catalogRepo.GetProductByID(productID); err != nil {
		return err
	}
	return s.cartRepo.AppendProduct(userID, productID)
}

// Clear replaces the cart content with an empty list.
func (s *CartService) Clear(userID uint) error {
	return s.cartRepo.Clear(userID)
}
