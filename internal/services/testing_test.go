package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"telefood/internal/models"
	"telefood/internal/repositories"
)

// openTestDB opens a fresh in-memory SQLite database scoped to the test name.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ProductType{},
		&models.Product{},
		&models.Cart{},
		&models.Order{},
		&models.Admin{},
	))
	return db
}

// seedCatalog inserts one category with two products and returns the products.
func seedCatalog(t *testing.T, db *gorm.DB) (models.Product, models.Product) {
	t.Helper()
	repo := repositories.NewGORMCatalogRepository(db)
	category := models.ProductType{Name: "Пицца"}
	require.NoError(t, repo.CreateCategory(&category))

	margherita := models.Product{Name: "Маргарита", Price: 450, ProductTypeID: category.ID}
	require.NoError(t, repo.CreateProduct(&margherita))
	pepperoni := models.Product{Name: "Пепперони", Price: 520, ProductTypeID: category.ID}
	require.NoError(t, repo.CreateProduct(&pepperoni))
	return margherita, pepperoni
}

// seedUser creates a user together with an empty cart.
func seedUser(t *testing.T, db *gorm.DB, telegramID int64) *models.User {
	t.Helper()
	repo := repositories.NewGORMUserRepository(db)
	user := &models.User{TelegramID: telegramID, Name: "Иван"}
	require.NoError(t, repo.CreateWithCart(user))
	return user
}
