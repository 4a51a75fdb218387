// Package trips implements the trip lifecycle and the ownership guard.
//
// Every read-for-edit, update and delete goes through getOwned: the trip is
// fetched first, so a missing row is ErrNotFound no matter who asks, and only
// then is the owner compared against the acting user. On a mismatch nothing
// is read back or mutated.
package trips

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"reiseplaner/models"
	"reiseplaner/store"
)

var (
	// ErrNotFound is returned when the trip does not exist.
	ErrNotFound = errors.New("trips: not found")
	// ErrDenied is returned when the acting user is not the trip's owner.
	ErrDenied = errors.New("trips: not the owner")
	// ErrMissingFields is returned when a required field is empty.
	ErrMissingFields = errors.New("trips: zielort, anreise and abreise are required")
)

// Input carries the editable trip fields as submitted by the form. Zielort,
// Anreise and Abreise are required; the dates stay free-form text.
type Input struct {
	Zielort             string
	Anreise             string
	Abreise             string
	Notiz               string
	Sehenswuerdigkeiten string
	Unterkunft          string
	Foodspots           string
	Packliste           string
}

func (in *Input) trim() {
	in.Zielort = strings.TrimSpace(in.Zielort)
	in.Anreise = strings.TrimSpace(in.Anreise)
	in.Abreise = strings.TrimSpace(in.Abreise)
}

func (in *Input) validate() error {
	if in.Zielort == "" || in.Anreise == "" || in.Abreise == "" {
		return ErrMissingFields
	}
	return nil
}

// Service owns trip records and enforces per-user ownership.
type Service struct {
	trips store.Trips
}

func NewService(trips store.Trips) *Service {
	return &Service{trips: trips}
}

// Create stores a new trip owned by ownerID and returns its ID.
func (s *Service) Create(ctx context.Context, ownerID int64, in Input) (int64, error) {
	in.trim()
	if err := in.validate(); err != nil {
		return 0, err
	}

	reise := &models.Reise{
		Zielort:             in.Zielort,
		Anreise:             in.Anreise,
		Abreise:             in.Abreise,
		Notiz:               in.Notiz,
		Sehenswuerdigkeiten: in.Sehenswuerdigkeiten,
		Unterkunft:          in.Unterkunft,
		Foodspots:           in.Foodspots,
		Packliste:           in.Packliste,
		BenutzerID:          ownerID,
	}
	if err := s.trips.Create(ctx, reise); err != nil {
		return 0, fmt.Errorf("creating trip: %w", err)
	}
	return reise.ID, nil
}

// GetForOwner returns the trip when it exists and belongs to actingID.
func (s *Service) GetForOwner(ctx context.Context, actingID, tripID int64) (*models.Reise, error) {
	return s.getOwned(ctx, actingID, tripID)
}

// ListByOwner returns all trips of one user in insertion order.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]models.Reise, error) {
	reisen, err := s.trips.ByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	return reisen, nil
}

// Update overwrites the editable fields of the trip. The owner reference is
// left untouched.
func (s *Service) Update(ctx context.Context, actingID, tripID int64, in Input) error {
	in.trim()
	if err := in.validate(); err != nil {
		return err
	}

	reise, err := s.getOwned(ctx, actingID, tripID)
	if err != nil {
		return err
	}

	reise.Zielort = in.Zielort
	reise.Anreise = in.Anreise
	reise.Abreise = in.Abreise
	reise.Notiz = in.Notiz
	reise.Sehenswuerdigkeiten = in.Sehenswuerdigkeiten
	reise.Unterkunft = in.Unterkunft
	reise.Foodspots = in.Foodspots
	reise.Packliste = in.Packliste

	if err := s.trips.Update(ctx, reise); err != nil {
		return fmt.Errorf("updating trip: %w", err)
	}
	return nil
}

// Delete removes the trip permanently.
func (s *Service) Delete(ctx context.Context, actingID, tripID int64) error {
	if _, err := s.getOwned(ctx, actingID, tripID); err != nil {
		return err
	}
	if err := s.trips.Delete(ctx, tripID); err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	return nil
}

// getOwned fetches the trip and checks ownership, in that order.
func (s *Service) getOwned(ctx context.Context, actingID, tripID int64) (*models.Reise, error) {
	reise, err := s.trips.ByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading trip: %w", err)
	}
	if reise.BenutzerID != actingID {
		return nil, ErrDenied
	}
	return reise, nil
}
