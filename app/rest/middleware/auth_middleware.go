package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"identity-dashboard/app/web"
)

// AuthMiddleware hydrates and enforces the dashboard session
type AuthMiddleware struct {
	sessions *web.SessionManager
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(sessions *web.SessionManager, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireSession middleware that requires a valid session cookie
func (m *AuthMiddleware) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := m.sessions.Read(c)
			if err != nil {
				m.logger.Debug("session validation failed", "error", err, "path", c.Request().URL.Path)
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			web.SetSession(c, session)
			return next(c)
		}
	}
}

// RequireAdmin middleware that requires an admin session. Must run after
// RequireSession.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := web.GetSession(c)
			if session == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !session.Admin {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
			}
			return next(c)
		}
	}
}

// OptionalSession hydrates the session when present without requiring it.
func (m *AuthMiddleware) OptionalSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if session, err := m.sessions.Read(c); err == nil {
				web.SetSession(c, session)
			}
			return next(c)
		}
	}
}
