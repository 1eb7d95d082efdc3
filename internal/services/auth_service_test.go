package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"telefood/internal/models"
	"telefood/internal/repositories"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := openTestDB(t)
	return NewAuthService(repositories.NewGORMAdminRepository(db), "test-secret")
}

func TestRegisterHashesPassword(t *testing.T) {
	service := newAuthService(t)

	admin := &models.Admin{Username: "root", Password: "secret123"}
	require.NoError(t, service.Register(admin))
	assert.NotEqual(t, "secret123", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("secret123")))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	service := newAuthService(t)

	require.NoError(t, service.Register(&models.Admin{Username: "root", Password: "secret123"}))
	err := service.Register(&models.Admin{Username: "root", Password: "another456"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestLoginRoundTrip(t *testing.T) {
	service := newAuthService(t)
	require.NoError(t, service.Register(&models.Admin{Username: "root", Password: "secret123"}))

	token, err := service.Login("root", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "root", claims["username"])
}

func TestLoginWrongPassword(t *testing.T) {
	service := newAuthService(t)
	require.NoError(t, service.Register(&models.Admin{Username: "root", Password: "secret123"}))

	_, err := service.Login("root", "wrong-password")
	assert.Error(t, err)
}

func TestLoginUnknownUsername(t *testing.T) {
	service := newAuthService(t)

	_, err := service.Login("ghost", "secret123")
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := newAuthService(t)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}
