package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reiseplaner/models"
	"reiseplaner/store"
)

type fakeSessions struct {
	rows map[string]*models.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{rows: map[string]*models.Session{}}
}

func (f *fakeSessions) Create(_ context.Context, s *models.Session) error {
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeSessions) Find(_ context.Context, id string) (*models.Session, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func TestStartResolveEnd(t *testing.T) {
	rows := newFakeSessions()
	m := NewManager(rows, []byte("secret"))
	ctx := context.Background()

	value, err := m.Start(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, value)

	userID, ok := m.Resolve(ctx, value)
	require.True(t, ok)
	assert.Equal(t, int64(7), userID)

	require.NoError(t, m.End(ctx, value))

	// The token itself is dead after End, replaying it resolves anonymous.
	_, ok = m.Resolve(ctx, value)
	assert.False(t, ok)
	assert.Empty(t, rows.rows)
}

func TestResolveGarbage(t *testing.T) {
	m := NewManager(newFakeSessions(), []byte("secret"))

	_, ok := m.Resolve(context.Background(), "")
	assert.False(t, ok)

	_, ok = m.Resolve(context.Background(), "not-a-token")
	assert.False(t, ok)
}

func TestResolveTamperedSignature(t *testing.T) {
	rows := newFakeSessions()
	other := NewManager(rows, []byte("other-secret"))
	ctx := context.Background()

	value, err := other.Start(ctx, 7)
	require.NoError(t, err)

	// Same backing rows, different signing key: the cookie must not resolve.
	m := NewManager(rows, []byte("secret"))
	_, ok := m.Resolve(ctx, value)
	assert.False(t, ok)
}

func TestResolveExpired(t *testing.T) {
	rows := newFakeSessions()
	m := NewManager(rows, []byte("secret"))
	ctx := context.Background()

	value, err := m.Start(ctx, 7)
	require.NoError(t, err)

	for _, s := range rows.rows {
		s.ExpiresAt = time.Now().Add(-time.Minute)
	}

	_, ok := m.Resolve(ctx, value)
	assert.False(t, ok)
	assert.Empty(t, rows.rows, "expired row should be cleaned up")
}

func TestEndUnknownValueIsNoop(t *testing.T) {
	m := NewManager(newFakeSessions(), []byte("secret"))
	assert.NoError(t, m.End(context.Background(), "not-a-token"))
}
