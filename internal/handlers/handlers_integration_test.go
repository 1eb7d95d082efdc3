package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"telefood/internal/middleware"
	"telefood/internal/models"
	"telefood/internal/repositories"
	"telefood/internal/services"
)

func setupTestApp(t *testing.T) *fiber.App {
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

	catalogRepo := repositories.NewGORMCatalogRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	adminRepo := repositories.NewGORMAdminRepository(db)

	authService := services.NewAuthService(adminRepo, "test-secret")
	catalogService := services.NewCatalogService(catalogRepo)
	orderService := services.NewOrderService(orderRepo, catalogRepo, nil)

	app := fiber.New()
	api := app.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(api)

	protected := api.Group("", middleware.AuthRequired(authService))
	NewCatalogHandler(catalogService).RegisterRoutes(protected)
	NewOrderHandler(orderService).RegisterRoutes(protected)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	payload := []byte{}
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func obtainToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"username": "root",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "root",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupTestApp(t)
	token := obtainToken(t, app)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := setupTestApp(t)
	obtainToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"username": "root",
		"password": "another456",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupTestApp(t)
	obtainToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "root",
		"password": "wrong-password",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/categories", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/categories", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestCategoryAndProductLifecycle(t *testing.T) {
	app := setupTestApp(t)
	token := obtainToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/categories", token, fiber.Map{
		"name": "Пицца",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var category models.ProductType
	decodeBody(t, resp, &category)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Пицца", category.Name)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", token, fiber.Map{
		"name":          "Маргарита",
		"price":         450.0,
		"category_name": "Пицца",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decodeBody(t, resp, &product)
	assert.Equal(t, category.ID, product.ProductTypeID)

	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", product.ID), token, fiber.Map{
		"name":          "Маргарита",
		"price":         480.0,
		"category_name": "Пицца",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Product
	decodeBody(t, resp, &updated)
	assert.InDelta(t, 480, updated.Price, 0.001)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listings []struct {
		models.Product
		CategoryName string `json:"category_name"`
	}
	decodeBody(t, resp, &listings)
	require.Len(t, listings, 1)
	assert.Equal(t, "Пицца", listings[0].CategoryName)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	app := setupTestApp(t)
	token := obtainToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", token, fiber.Map{
		"name":          "Суп",
		"price":         300.0,
		"category_name": "Нет такой",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProductValidation(t *testing.T) {
	app := setupTestApp(t)
	token := obtainToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", token, fiber.Map{
		"price":         300.0,
		"category_name": "Пицца",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetOrdersEmpty(t *testing.T) {
	app := setupTestApp(t)
	token := obtainToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []OrderView
	decodeBody(t, resp, &orders)
	assert.Empty(t, orders)
}

func TestMarkPaidUnknownOrder(t *testing.T) {
	app := setupTestApp(t)
	token := obtainToken(t, app)

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/orders/9999/paid", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportOrders(t *testing.T) {
	app := setupTestApp(t)
	token := obtainToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/orders/export", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "orders.xlsx")
}
