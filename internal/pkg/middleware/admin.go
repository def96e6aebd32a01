package middleware

import (
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/kasozi/talentpay/internal/pkg/models"
	"github.com/kasozi/talentpay/internal/utils"
)

// AdminJWT returns middleware that accepts only bearer tokens carrying an
// admin role claim. 401 for missing or invalid tokens, 403 for valid
// tokens without the admin role.
func AdminJWT(cfg models.JWTConfig) echo.MiddlewareFunc {
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Secret),
	})

	roleCheck := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return utils.UnauthorizedResponse(c, "Missing token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token claims")
			}

			role := fmt.Sprintf("%v", claims["role"])
			if role != "admin" {
				return utils.ErrorResponseHandler(c, http.StatusForbidden, "Admin role required")
			}

			if actor, exists := claims["email"]; exists {
				c.Set("actor", fmt.Sprintf("%v", actor))
			}

			return next(c)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtMiddleware(roleCheck(next))
	}
}

// Actor returns the authenticated admin identity set by AdminJWT
func Actor(c echo.Context) string {
	if actor, ok := c.Get("actor").(string); ok {
		return actor
	}
	return "unknown"
}
