package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/coopbat/intake-api/internal/core/domain"
	"github.com/coopbat/intake-api/internal/core/ports"
)

// HeaderArtisanToken carries the opaque session token on artisan calls.
const HeaderArtisanToken = "X-Artisan-Token"

// Artisan gates artisan-scoped routes: the token presented in the header
// must validate against the digest stored for the :artisan_id path
// segment. Every negative outcome — absent header, unknown artisan,
// revoked or mismatching token — answers 401.
func Artisan(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			artisanID := c.Param("artisan_id")
			presented := c.Request().Header.Get(HeaderArtisanToken)

			if !tokens.Validate(c.Request().Context(), artisanID, presented) {
				return domain.ErrUnauthorized
			}

			return next(c)
		}
	}
}
