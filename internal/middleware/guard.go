package middleware

import (
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/common"

	"github.com/labstack/echo/v4"
)

// RequireAdmin rejects sessions that do not carry the admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := common.GetSessionFromContext(c.Request().Context())
			if !ok {
				return common.SendUnauthorized(c)
			}
			if !session.IsAdmin() {
				return common.SendForbidden(c)
			}
			return next(c)
		}
	}
}

// RequireClientAccess enforces the tenant guard for routes that address a
// client by slug: admins pass, everyone else only when their session's client
// scope matches the path parameter. The check is stateless and re-evaluated
// on every request.
func RequireClientAccess(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := common.GetSessionFromContext(c.Request().Context())
			if !ok {
				return common.SendUnauthorized(c)
			}
			if !session.CanAccessClient(c.Param(param)) {
				return common.SendForbidden(c)
			}
			return next(c)
		}
	}
}
