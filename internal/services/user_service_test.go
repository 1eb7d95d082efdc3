package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telefood/internal/models"
	"telefood/internal/repositories"
)

func TestResolveCreatesUserWithEmptyCart(t *testing.T) {
	db := openTestDB(t)
	service := NewUserService(repositories.NewGORMUserRepository(db))
	cartRepo := repositories.NewGORMCartRepository(db)

	user, err := service.Resolve(100500, "Анна")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, int64(100500), user.TelegramID)
	assert.Equal(t, "Анна", user.Name)

	cart, err := cartRepo.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.True(t, cart.Content.IsEmpty())
}

func TestResolveReturnsExistingUser(t *testing.T) {
	db := openTestDB(t)
	service := NewUserService(repositories.NewGORMUserRepository(db))

	first, err := service.Resolve(42, "Анна")
	require.NoError(t, err)
	second, err := service.Resolve(42, "Анна")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveUpdatesChangedName(t *testing.T) {
	db := openTestDB(t)
	service := NewUserService(repositories.NewGORMUserRepository(db))

	_, err := service.Resolve(42, "Анна")
	require.NoError(t, err)

	user, err := service.Resolve(42, "Аня")
	require.NoError(t, err)
	assert.Equal(t, "Аня", user.Name)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "Аня", stored.Name)
}

func TestResolveNameUpdateLeavesCartUntouched(t *testing.T) {
	db := openTestDB(t)
	margherita, _ := seedCatalog(t, db)
	service := NewUserService(repositories.NewGORMUserRepository(db))
	cartRepo := repositories.NewGORMCartRepository(db)

	user, err := service.Resolve(42, "Анна")
	require.NoError(t, err)
	require.NoError(t, cartRepo.AppendProduct(user.ID, margherita.ID))

	_, err = service.Resolve(42, "Аня")
	require.NoError(t, err)

	cart, err := cartRepo.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{margherita.ID}, cart.Content.Products)
}

func TestResolveKeepsNameWhenEmpty(t *testing.T) {
	db := openTestDB(t)
	service := NewUserService(repositories.NewGORMUserRepository(db))

	_, err := service.Resolve(42, "Анна")
	require.NoError(t, err)

	user, err := service.Resolve(42, "")
	require.NoError(t, err)
	assert.Equal(t, "Анна", user.Name)
}
