// Package session maps opaque browser cookies to logged-in users.
//
// Each login creates a sessions row keyed by a random UUID. The cookie value
// is an HS256-signed JWT carrying that UUID, so the cookie cannot be forged,
// while the row keeps the session revocable: logout deletes it and a replayed
// cookie resolves to nobody.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"reiseplaner/models"
	"reiseplaner/store"
)

// CookieName is the name of the session cookie.
const CookieName = "reiseplaner_session"

// DefaultValidity is how long a session lives before it expires.
const DefaultValidity = 30 * 24 * time.Hour

type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager starts, resolves and ends login sessions.
type Manager struct {
	sessions store.Sessions
	secret   []byte
	validity time.Duration
}

func NewManager(sessions store.Sessions, secret []byte) *Manager {
	return &Manager{sessions: sessions, secret: secret, validity: DefaultValidity}
}

// Start creates a session for the user and returns the signed cookie value.
func (m *Manager) Start(ctx context.Context, userID int64) (string, error) {
	expiresAt := time.Now().Add(m.validity)
	sess := &models.Session{
		ID:         uuid.NewString(),
		BenutzerID: userID,
		ExpiresAt:  expiresAt,
	}
	if err := m.sessions.Create(ctx, sess); err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		SessionID: sess.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Resolve returns the user bound to the cookie value, or false when the
// cookie is missing, tampered with, expired or already ended. Expired rows
// are deleted on the way out.
func (m *Manager) Resolve(ctx context.Context, value string) (int64, bool) {
	id, ok := m.sessionID(value)
	if !ok {
		return 0, false
	}

	sess, err := m.sessions.Find(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			zap.L().Error("session lookup failed", zap.Error(err))
		}
		return 0, false
	}
	if sess.ExpiresAt.Before(time.Now()) {
		_ = m.sessions.Delete(ctx, id)
		return 0, false
	}
	return sess.BenutzerID, true
}

// End destroys the session behind the cookie value. Resolving the same value
// afterwards returns anonymous. Ending an invalid or unknown value is a no-op.
func (m *Manager) End(ctx context.Context, value string) error {
	id, ok := m.sessionID(value)
	if !ok {
		return nil
	}
	if err := m.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("ending session: %w", err)
	}
	return nil
}

func (m *Manager) sessionID(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	cl := &claims{}
	token, err := jwt.ParseWithClaims(value, cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || cl.SessionID == "" {
		return "", false
	}
	return cl.SessionID, true
}
