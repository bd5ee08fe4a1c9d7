package middleware

import (
	"fmt"
	"strings"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionClaims are the claims the identity provider puts in session tokens:
// the caller's role and, for non-admin users, the client slug the session is
// scoped to.
type SessionClaims struct {
	Role       string `json:"role"`
	ClientSlug string `json:"clientSlug"`
	jwt.RegisteredClaims
}

// SessionMiddleware validates the bearer token and stores the resulting
// session in the request context. Requests without a valid session get a 401
// envelope; authorization against a specific client happens in the guard.
func SessionMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return common.SendUnauthorized(c)
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return common.SendUnauthorized(c)
			}

			claims := &SessionClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return common.SendUnauthorized(c)
			}

			session := &common.Session{
				Subject:    claims.Subject,
				Role:       claims.Role,
				ClientSlug: claims.ClientSlug,
			}
			ctx := common.WithSession(c.Request().Context(), session)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
