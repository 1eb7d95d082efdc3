package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"telefood/internal/models"
	"telefood/internal/repositories"
)

func TestMenuSkipsEmptyCategories(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	service := NewCatalogService(repositories.NewGORMCatalogRepository(db))
	require.NoError(t, service.CreateCategory(&models.ProductType{Name: "Напитки"}))

	sections, err := service.Menu()
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Пицца", sections[0].Category.Name)
	assert.Len(t, sections[0].Products, 2)
}

func TestMenuMemoizedUntilInvalidated(t *testing.T) {
	db := openTestDB(t)
	margherita, _ := seedCatalog(t, db)
	repo := repositories.NewGORMCatalogRepository(db)
	service := NewCatalogService(repo)

	_, err := service.Menu()
	require.NoError(t, err)

	// Write past the service: the memoized snapshot must not see it.
	extra := models.Product{Name: "Гавайская", Price: 480, ProductTypeID: margherita.ProductTypeID}
	require.NoError(t, repo.CreateProduct(&extra))

	sections, err := service.Menu()
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Products, 2)

	service.Invalidate()
	sections, err = service.Menu()
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Products, 3)
}

func TestCreateProductInvalidatesMenu(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	service := NewCatalogService(repositories.NewGORMCatalogRepository(db))

	_, err := service.Menu()
	require.NoError(t, err)

	_, err = service.CreateProduct("Гавайская", 480, "Пицца", "")
	require.NoError(t, err)

	sections, err := service.Menu()
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Products, 3)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	service := NewCatalogService(repositories.NewGORMCatalogRepository(db))

	_, err := service.CreateProduct("Суп", 300, "Нет такой", "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateProductMovesCategory(t *testing.T) {
	db := openTestDB(t)
	margherita, _ := seedCatalog(t, db)
	service := NewCatalogService(repositories.NewGORMCatalogRepository(db))
	require.NoError(t, service.CreateCategory(&models.ProductType{Name: "Акции"}))

	updated, err := service.UpdateProduct(margherita.ID, "Маргарита со скидкой", 400, "Акции")
	require.NoError(t, err)
	assert.Equal(t, "Маргарита со скидкой", updated.Name)
	assert.InDelta(t, 400, updated.Price, 0.001)
	assert.NotEqual(t, margherita.ProductTypeID, updated.ProductTypeID)

	listings, err := service.ListProductsWithCategory()
	require.NoError(t, err)
	byID := make(map[uint]ProductListing, len(listings))
	for _, listing := range listings {
		byID[listing.ID] = listing
	}
	assert.Equal(t, "Акции", byID[margherita.ID].CategoryName)
}

func TestUpdateUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	service := NewCatalogService(repositories.NewGORMCatalogRepository(db))

	_, err := service.UpdateProduct(9999, "Суп", 300, "Пицца")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListCategoriesSortedByName(t *testing.T) {
	db := openTestDB(t)
	service := NewCatalogService(repositories.NewGORMCatalogRepository(db))
	for _, name := range []string{"Суши", "Напитки", "Пицца"} {
		require.NoError(t, service.CreateCategory(&models.ProductType{Name: name}))
	}

	categories, err := service.ListCategories()
	require.NoError(t, err)
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	assert.Equal(t, []string{"Напитки", "Пицца", "Суши"}, names)
}
