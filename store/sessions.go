package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"reiseplaner/models"
)

// Sessions persists login sessions. A session exists exactly as long as its
// row does; deleting the row is what invalidates the session.
type Sessions interface {
	Create(ctx context.Context, s *models.Session) error
	// Find returns the session with the given ID or ErrNotFound.
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// BunSessions implements Sessions on top of bun.
type BunSessions struct {
	db *bun.DB
}

func NewBunSessions(db *bun.DB) *BunSessions {
	return &BunSessions{db: db}
}

func (s *BunSessions) Create(ctx context.Context, sess *models.Session) error {
	if _, err := s.db.NewInsert().Model(sess).Exec(ctx); err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (s *BunSessions) Find(ctx context.Context, id string) (*models.Session, error) {
	sess := &models.Session{}
	err := s.db.NewSelect().Model(sess).
		Where("s.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("selecting session: %w", err)
	}
	return sess, nil
}

func (s *BunSessions) Delete(ctx context.Context, id string) error {
	if _, err := s.db.NewDelete().Model((*models.Session)(nil)).
		Where("id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
