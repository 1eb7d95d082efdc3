package services

import (
	"sync"

	"telefood/internal/models"
	"telefood/internal/repositories"
)

// MenuSection is one category of the rendered menu: the category together
// with its products.
type MenuSection struct {
	Category models.ProductType
	Products []models.Product
}

// ProductListing is a product joined with its category name, for the admin
// product list.
type ProductListing struct {
	models.Product
	CategoryName string `json:"category_name"`
}

// CatalogService exposes catalog reads for the bot and catalog writes for the
// admin API. The assembled menu is memoized and invalidated on every write,
// so the bot never serves a stale snapshot.
type CatalogService struct {
	repo repositories.CatalogRepository

	menuMu sync.RWMutex
	menu   []MenuSection // nil when stale
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListCategories retrieves all categories sorted by name.
func (s *CatalogService) ListCategories() ([]models.ProductType, error) {
	return s.repo.GetCategories()
}

// ListProducts retrieves the products of one category.
func (s *CatalogService) ListProducts(categoryID uint) ([]models.Product, error) {
	return s.repo.GetProductsByCategory(categoryID)
}

// GetProduct retrieves a single product.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.GetProductByID(id)
}

// Menu returns the per-category menu, rebuilding the memoized snapshot when a
// catalog write has invalidated it. Categories without products are omitted.
func (s *CatalogService) Menu() ([]MenuSection, error) {
	s.menuMu.RLock()
	menu := s.menu
	s.menuMu.RUnlock()
	if menu != nil {
		return menu, nil
	}

	categories, err := s.repo.GetCategories()
	if err != nil {
		return nil, err
	}
	sections := make([]MenuSection, 0, len(categories))
	for _, category := range categories {
		products, err := s.repo.GetProductsByCategory(category.ID)
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			continue
		}
		sections = append(sections, MenuSection{Category: category, Products: products})
	}

	s.menuMu.Lock()
	s.menu = sections
	s.menuMu.Unlock()
	return sections, nil
}

// Invalidate drops the memoized menu snapshot.
func (s *CatalogService) Invalidate() {
	s.menuMu.Lock()
	s.menu = nil
	s.menuMu.Unlock()
}

// CreateCategory creates a new category.
func (s *CatalogService) CreateCategory(category *models.ProductType) error {
	if err := s.repo.CreateCategory(category); err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// CreateProduct creates a product under the category with the given name.
// The category name must resolve to an existing category.
func (s *CatalogService) CreateProduct(name string, price float64, categoryName, description string) (*models.Product, error) {
	category, err := s.repo.GetCategoryByName(categoryName)
	if err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:          name,
		Price:         price,
		ProductTypeID: category.ID,
		Description:   description,
	}
	if err := s.repo.CreateProduct(product); err != nil {
		return nil, err
	}
	s.Invalidate()
	return product, nil
}

// UpdateProduct updates an existing product, re-resolving the category by
// name. Unknown products and unknown category names are rejected.
func (s *CatalogService) UpdateProduct(id uint, name string, price float64, categoryName string) (*models.Product, error) {
	product, err := s.repo.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	category, err := s.repo.GetCategoryByName(categoryName)
	if err != nil {
		return nil, err
	}
	product.Name = name
	product.Price = price
	product.ProductTypeID = category.ID
	if err := s.repo.UpdateProduct(product); err != nil {
		return nil, err
	}
	s.Invalidate()
	return product, nil
}

// ListProductsWithCategory returns every product joined with its category
// name, for the admin product list.
func (s *CatalogService) ListProductsWithCategory() ([]ProductListing, error) {
	products, err := s.repo.GetProducts()
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.GetCategories()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	listings := make([]ProductListing, 0, len(products))
	for _, product := range products {
		listings = append(listings, ProductListing{
			Product:      product,
			CategoryName: names[product.ProductTypeID],
		})
	}
	return listings, nil
}
