package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextKeyProUserID is the echo context key set by OptionalPro when a
// valid session accompanied the request.
const ContextKeyProUserID = "pro_user_id"

// OptionalPro parses a Bearer JWT when one is present and injects the pro
// user id into context. A missing or invalid token is not an error: simple
// submissions work anonymously, the session only adds attribution.
func OptionalPro(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			if userID, ok := claims["user_id"].(string); ok {
				c.Set(ContextKeyProUserID, userID)
			}

			return next(c)
		}
	}
}
