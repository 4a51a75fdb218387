package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Session is a server-stored login session. Presence of the row is what makes
// a session cookie valid; logout deletes the row, so a replayed cookie no
// longer resolves to a user.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID         string    `bun:"id,pk"`
	BenutzerID int64     `bun:"benutzer_id,notnull"`
	ExpiresAt  time.Time `bun:"expires_at,notnull"`
}
