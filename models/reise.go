package models

import "github.com/uptrace/bun"

// Reise is a single planned trip. Every trip belongs to exactly one user;
// benutzer_id is set at creation and never reassigned.
//
// Anreise and Abreise are free-form date strings entered by the user, not
// parsed calendar dates.
type Reise struct {
	bun.BaseModel `bun:"table:reisen,alias:r"`

	ID                  int64  `bun:"id,pk,autoincrement"`
	Zielort             string `bun:"zielort,notnull"`
	Anreise             string `bun:"anreise,notnull"`
	Abreise             string `bun:"abreise,notnull"`
	Notiz               string `bun:"notiz"`
	Sehenswuerdigkeiten string `bun:"sehenswuerdigkeiten"`
	Unterkunft          string `bun:"unterkunft"`
	Foodspots           string `bun:"foodspots"`
	Packliste           string `bun:"packliste"`
	BenutzerID          int64  `bun:"benutzer_id,notnull"`

	Benutzer *User `bun:"rel:belongs-to,join:benutzer_id=id"`
}
