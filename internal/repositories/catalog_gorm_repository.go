package repositories

import (
	"errors"
	"fmt"

	"telefood/internal/models"

	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// GetCategories retrieves all categories sorted by name ascending.
func (r *GORMCatalogRepository) GetCategories() ([]models.ProductType, error) {
	var categories []models.ProductType
	if err := r.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByName retrieves a category by its exact name.
func (r *GORMCatalogRepository) GetCategoryByName(name string) (*models.ProductType, error) {
	var category models.ProductType
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %q not found: %w", name, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get category %q: %w", name, err)
	}
	return &category, nil
}

// CreateCategory creates a new category.
func (r *GORMCatalogRepository) CreateCategory(category *models.ProductType) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetProducts retrieves all products.
func (r *GORMCatalogRepository) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetProductsByCategory retrieves the products of one category. No ordering
// is guaranteed.
func (r *GORMCatalogRepository) GetProductsByCategory(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "product_type_id = ?", categoryID).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for category %d: %w", categoryID, err)
	}
	return products, nil
}

// GetProductByID retrieves a single product by its id.
func (r *GORMCatalogRepository) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with id %d not found: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}
	return &product, nil
}

// CreateProduct creates a new product.
func (r *GORMCatalogRepository) CreateProduct(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateProduct updates an existing product.
func (r *GORMCatalogRepository) UpdateProduct(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with id %d not found for update: %w", product.ID, gorm.ErrRecordNotFound)
	}
	return nil
}
