// Package handlers translates the HTML form routes into calls against the
// auth, session and trips services. Every error from the core taxonomy is
// recovered here into a flash notice plus a redirect; nothing surfaces a raw
// database error or a stack trace to the browser.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reiseplaner/auth"
	mw "reiseplaner/middleware"
	"reiseplaner/session"
	"reiseplaner/trips"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	auth          *auth.Service
	sessions      *session.Manager
	trips         *trips.Service
	secureCookies bool
}

// New creates a Handler. secureCookies should be true whenever the app is
// served over TLS.
func New(a *auth.Service, m *session.Manager, t *trips.Service, secureCookies bool) *Handler {
	return &Handler{auth: a, sessions: m, trips: t, secureCookies: secureCookies}
}

// Mount registers all routes on the echo instance. Protected routes sit
// behind the session middleware and bounce anonymous callers to /login.
func (h *Handler) Mount(e *echo.Echo) {
	e.Use(mw.LoadUser(h.sessions))

	// Public
	e.GET("/", h.Home)
	e.GET("/register", h.RegisterForm)
	e.POST("/register", h.Register)
	e.GET("/login", h.LoginForm)
	e.POST("/login", h.Login)

	// Protected
	priv := e.Group("", mw.RequireUser())
	priv.GET("/logout", h.Logout)
	priv.GET("/mein-reiseplan", h.ReisePlan)
	priv.GET("/reise-hinzufuegen", h.ReiseNeuForm)
	priv.POST("/reise-hinzufuegen", h.ReiseAnlegen)
	priv.GET("/reise_loeschen/:id", h.ReiseLoeschen)
	priv.GET("/reise-bearbeiten/:id", h.ReiseBearbeitenForm)
	priv.POST("/reise-bearbeiten/:id", h.ReiseBearbeiten)
}

// render executes a template with the common page fields (flash notice,
// login state) merged into data.
func (h *Handler) render(c echo.Context, status int, name, title string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["Titel"] = title
	data["Flash"] = popFlash(c)
	_, angemeldet := c.Get(mw.UserIDKey).(int64)
	data["Angemeldet"] = angemeldet
	return c.Render(status, name, data)
}

// Home renders the landing page.
func (h *Handler) Home(c echo.Context) error {
	return h.render(c, http.StatusOK, "base.html", "Start", nil)
}
