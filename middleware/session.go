// Package middleware wires the session resolver into the echo request
// pipeline.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reiseplaner/session"
)

// UserIDKey is the echo context key under which LoadUser stores the acting
// user's ID. It is only set for authenticated requests.
const UserIDKey = "userID"

// LoadUser resolves the session cookie on every request and, when it maps to
// a live session, stores the user ID in the context. Anonymous requests pass
// through untouched.
func LoadUser(m *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err == nil && cookie.Value != "" {
				if userID, ok := m.Resolve(c.Request().Context(), cookie.Value); ok {
					c.Set(UserIDKey, userID)
				}
			}
			return next(c)
		}
	}
}

// RequireUser rejects anonymous requests with a redirect to the login page.
// Every protected route fails the same way; there is no implicit identity.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(UserIDKey).(int64); !ok {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// UserID returns the acting user's ID. It must only be called from handlers
// behind RequireUser.
func UserID(c echo.Context) int64 {
	return c.Get(UserIDKey).(int64)
}
