package models

import "github.com/uptrace/bun"

// User is a registered account. The password is only ever stored as a
// bcrypt hash.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64  `bun:"id,pk,autoincrement"`
	Email        string `bun:"email,notnull,unique"`
	PasswordHash string `bun:"password_hash,notnull"`
}
