package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"reiseplaner/models"
)

// Trips persists trip records.
type Trips interface {
	// Create inserts the trip and fills in its ID.
	Create(ctx context.Context, r *models.Reise) error
	// ByID returns the trip with the given ID or ErrNotFound.
	ByID(ctx context.Context, id int64) (*models.Reise, error)
	// ByOwner returns all trips of one user in insertion order.
	ByOwner(ctx context.Context, ownerID int64) ([]models.Reise, error)
	// Update overwrites the editable columns of the trip row. The owner
	// column is never part of the update.
	Update(ctx context.Context, r *models.Reise) error
	Delete(ctx context.Context, id int64) error
}

// BunTrips implements Trips on top of bun.
type BunTrips struct {
	db *bun.DB
}

func NewBunTrips(db *bun.DB) *BunTrips {
	return &BunTrips{db: db}
}

func (s *BunTrips) Create(ctx context.Context, r *models.Reise) error {
	if _, err := s.db.NewInsert().Model(r).Exec(ctx); err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}
	return nil
}

func (s *BunTrips) ByID(ctx context.Context, id int64) (*models.Reise, error) {
	reise := &models.Reise{}
	err := s.db.NewSelect().Model(reise).
		Where("r.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("selecting trip: %w", err)
	}
	return reise, nil
}

func (s *BunTrips) ByOwner(ctx context.Context, ownerID int64) ([]models.Reise, error) {
	var reisen []models.Reise
	err := s.db.NewSelect().Model(&reisen).
		Where("benutzer_id = ?", ownerID).
		OrderExpr("r.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting trips by owner: %w", err)
	}
	return reisen, nil
}

func (s *BunTrips) Update(ctx context.Context, r *models.Reise) error {
	res, err := s.db.NewUpdate().Model(r).
		Column("zielort", "anreise", "abreise", "notiz", "sehenswuerdigkeiten",
			"unterkunft", "foodspots", "packliste").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("updating trip: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BunTrips) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.NewDelete().Model((*models.Reise)(nil)).
		Where("id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	return nil
}
