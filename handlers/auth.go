package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"reiseplaner/auth"
	"reiseplaner/session"
)

// RegisterForm renders the registration page.
func (h *Handler) RegisterForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "register.html", "Registrieren", nil)
}

// Register creates a new account from the submitted form.
func (h *Handler) Register(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	_, err := h.auth.Register(c.Request().Context(), email, password)
	switch {
	case err == nil:
		h.flash(c, "Registrierung erfolgreich. Du kannst dich jetzt einloggen.")
		return c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, auth.ErrEmailTaken):
		h.flash(c, "E-Mail ist bereits registriert.")
		return c.Redirect(http.StatusSeeOther, "/register")
	case errors.Is(err, auth.ErrMissingCredentials):
		h.flash(c, "Bitte E-Mail und Passwort angeben.")
		return c.Redirect(http.StatusSeeOther, "/register")
	default:
		zap.L().Error("registration failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
}

// LoginForm renders the login page.
func (h *Handler) LoginForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "login.html", "Login", nil)
}

// Login verifies credentials and starts a session. Unknown email and wrong
// password produce the same notice.
func (h *Handler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	userID, err := h.auth.Verify(c.Request().Context(), email, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			zap.L().Error("login failed", zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError)
		}
		h.flash(c, "Login fehlgeschlagen. Bitte überprüfe deine Daten.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	value, err := h.sessions.Start(c.Request().Context(), userID)
	if err != nil {
		zap.L().Error("starting session failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(session.DefaultValidity.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	h.flash(c, "Erfolgreich eingeloggt.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout destroys the caller's session and clears the cookie. The old cookie
// value is unusable afterwards even if replayed.
func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		if err := h.sessions.End(c.Request().Context(), cookie.Value); err != nil {
			zap.L().Error("ending session failed", zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	h.flash(c, "Du wurdest erfolgreich ausgeloggt.")
	return c.Redirect(http.StatusSeeOther, "/login")
}
