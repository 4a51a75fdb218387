package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"reiseplaner/models"
)

// Users persists user accounts.
type Users interface {
	// Create inserts the user and fills in its ID. A second user with the
	// same email yields ErrDuplicate; the unique constraint makes the
	// check-and-insert race-free under concurrent registration.
	Create(ctx context.Context, u *models.User) error
	// ByEmail returns the user with the given email or ErrNotFound.
	ByEmail(ctx context.Context, email string) (*models.User, error)
}

// BunUsers implements Users on top of bun.
type BunUsers struct {
	db *bun.DB
}

func NewBunUsers(db *bun.DB) *BunUsers {
	return &BunUsers{db: db}
}

func (s *BunUsers) Create(ctx context.Context, u *models.User) error {
	if _, err := s.db.NewInsert().Model(u).Exec(ctx); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
			return ErrDuplicate
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (s *BunUsers) ByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().Model(user).
		Where("email = ?", email).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("selecting user by email: %w", err)
	}
	return user, nil
}
