package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasozi/talentpay/internal/pkg/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func setupAdminRoute() *echo.Echo {
	e := echo.New()
	g := e.Group("/admin")
	g.Use(AdminJWT(models.JWTConfig{Secret: testSecret}))
	g.GET("/whoami", func(c echo.Context) error {
		return c.String(http.StatusOK, Actor(c))
	})
	return e
}

func TestAdminJWT_AllowsAdminAndSetsActor(t *testing.T) {
	e := setupAdminRoute()

	token := signToken(t, jwt.MapClaims{
		"role":  "admin",
		"email": "admin@talentpay.ug",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@talentpay.ug", rec.Body.String())
}

func TestAdminJWT_RejectsNonAdminRole(t *testing.T) {
	e := setupAdminRoute()

	token := signToken(t, jwt.MapClaims{
		"role":  "user",
		"email": "payer@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminJWT_RejectsMissingToken(t *testing.T) {
	e := setupAdminRoute()

	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminJWT_RejectsBadSignature(t *testing.T) {
	e := setupAdminRoute()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
