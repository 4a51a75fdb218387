package trips

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reiseplaner/models"
	"reiseplaner/store"
)

type fakeTrips struct {
	rows   map[int64]*models.Reise
	order  []int64
	nextID int64
}

func newFakeTrips() *fakeTrips {
	return &fakeTrips{rows: map[int64]*models.Reise{}}
}

func (f *fakeTrips) Create(_ context.Context, r *models.Reise) error {
	f.nextID++
	r.ID = f.nextID
	cp := *r
	f.rows[r.ID] = &cp
	f.order = append(f.order, r.ID)
	return nil
}

func (f *fakeTrips) ByID(_ context.Context, id int64) (*models.Reise, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeTrips) ByOwner(_ context.Context, ownerID int64) ([]models.Reise, error) {
	var out []models.Reise
	for _, id := range f.order {
		if r, ok := f.rows[id]; ok && r.BenutzerID == ownerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeTrips) Update(_ context.Context, r *models.Reise) error {
	stored, ok := f.rows[r.ID]
	if !ok {
		return store.ErrNotFound
	}
	cp := *r
	cp.BenutzerID = stored.BenutzerID
	f.rows[r.ID] = &cp
	return nil
}

func (f *fakeTrips) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func rome() Input {
	return Input{Zielort: "Rom", Anreise: "2025-01-01", Abreise: "2025-01-05"}
}

func TestCreateAndListByOwner(t *testing.T) {
	s := NewService(newFakeTrips())
	ctx := context.Background()

	id, err := s.Create(ctx, 1, rome())
	require.NoError(t, err)
	require.NotZero(t, id)

	mine, err := s.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Rom", mine[0].Zielort)
	assert.Equal(t, int64(1), mine[0].BenutzerID)

	theirs, err := s.ListByOwner(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := NewService(newFakeTrips())
	ctx := context.Background()

	for _, ziel := range []string{"Rom", "Lissabon", "Oslo"} {
		in := rome()
		in.Zielort = ziel
		_, err := s.Create(ctx, 1, in)
		require.NoError(t, err)
	}

	mine, err := s.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "Rom", mine[0].Zielort)
	assert.Equal(t, "Lissabon", mine[1].Zielort)
	assert.Equal(t, "Oslo", mine[2].Zielort)
}

func TestCreateMissingFields(t *testing.T) {
	s := NewService(newFakeTrips())
	ctx := context.Background()

	for _, in := range []Input{
		{Anreise: "2025-01-01", Abreise: "2025-01-05"},
		{Zielort: "Rom", Abreise: "2025-01-05"},
		{Zielort: "Rom", Anreise: "2025-01-01"},
		{Zielort: "   ", Anreise: "2025-01-01", Abreise: "2025-01-05"},
	} {
		_, err := s.Create(ctx, 1, in)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestForeignTripIsDenied(t *testing.T) {
	fake := newFakeTrips()
	s := NewService(fake)
	ctx := context.Background()

	id, err := s.Create(ctx, 1, rome())
	require.NoError(t, err)

	_, err = s.GetForOwner(ctx, 2, id)
	assert.ErrorIs(t, err, ErrDenied)

	in := rome()
	in.Zielort = "Venedig"
	assert.ErrorIs(t, s.Update(ctx, 2, id, in), ErrDenied)
	assert.ErrorIs(t, s.Delete(ctx, 2, id), ErrDenied)

	// Nothing was mutated or removed.
	reise, err := s.GetForOwner(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, "Rom", reise.Zielort)
}

func TestNotFoundBeforeDenied(t *testing.T) {
	s := NewService(newFakeTrips())
	ctx := context.Background()

	_, err := s.Create(ctx, 1, rome())
	require.NoError(t, err)

	// A missing trip is NotFound for everyone, owner or not.
	for _, actingID := range []int64{1, 2} {
		_, err := s.GetForOwner(ctx, actingID, 999)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.Update(ctx, actingID, 999, rome()), ErrNotFound)
		assert.ErrorIs(t, s.Delete(ctx, actingID, 999), ErrNotFound)
	}
}

func TestUpdateKeepsOwner(t *testing.T) {
	fake := newFakeTrips()
	s := NewService(fake)
	ctx := context.Background()

	id, err := s.Create(ctx, 1, rome())
	require.NoError(t, err)

	in := Input{
		Zielort:   "Venedig",
		Anreise:   "2025-02-01",
		Abreise:   "2025-02-07",
		Notiz:     "Gondelfahrt buchen",
		Packliste: "Regenjacke",
	}
	require.NoError(t, s.Update(ctx, 1, id, in))

	reise, err := s.GetForOwner(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, "Venedig", reise.Zielort)
	assert.Equal(t, "Gondelfahrt buchen", reise.Notiz)
	assert.Equal(t, "Regenjacke", reise.Packliste)
	assert.Equal(t, int64(1), reise.BenutzerID)
}

func TestDelete(t *testing.T) {
	s := NewService(newFakeTrips())
	ctx := context.Background()

	id, err := s.Create(ctx, 1, rome())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, 1, id))

	_, err = s.GetForOwner(ctx, 1, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
