package repositories

import "telefood/internal/models"

// CatalogRepository defines the interface for category and product data
// access. The bot only reads the catalog; writes come from the admin API.
type CatalogRepository interface {
	GetCategories() ([]models.ProductType, error) // sorted by name ascending
	GetCategoryByName(name string) (*models.ProductType, error)
	CreateCategory(category *models.ProductType) error
	GetProducts() ([]models.Product, error)
	GetProductsByCategory(categoryID uint) ([]models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(product *models.Product) error
}
