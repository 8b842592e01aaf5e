package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/coopbat/intake-api/internal/core/domain"
)

// HeaderAdminToken carries the process-wide admin secret on catalog
// mutations.
const HeaderAdminToken = "X-Admin-Token"

// Admin gates a route on the configured admin token. An empty configured
// token is a deployment fault and answers 500 on every call rather than
// silently opening the surface.
func Admin(adminToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if adminToken == "" {
				return domain.ErrServerMisconfigured
			}

			presented := c.Request().Header.Get(HeaderAdminToken)
			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(adminToken)) != 1 {
				return domain.ErrUnauthorized
			}

			return next(c)
		}
	}
}
