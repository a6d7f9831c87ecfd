package middleware

import (
	"strings"

	"github.com/hatynka/storefront/internal/pkg/constants"
	jwtpkg "github.com/hatynka/storefront/internal/pkg/jwt"
	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/hatynka/storefront/internal/utils"
	"github.com/labstack/echo/v4"
)

// OptionalJWTMiddleware authenticates the customer when a bearer token is
// present and lets guests through otherwise. A malformed or invalid token
// is still rejected.
func OptionalJWTMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			customerID, err := jwtpkg.CustomerID(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(constants.ContextCustomerID, customerID)
			return next(c)
		}
	}
}
