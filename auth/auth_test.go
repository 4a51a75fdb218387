package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reiseplaner/models"
	"reiseplaner/store"
)

type fakeUsers struct {
	byEmail map[string]*models.User
	nextID  int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return store.ErrDuplicate
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func TestRegisterThenVerify(t *testing.T) {
	s := NewService(newFakeUsers())
	ctx := context.Background()

	id, err := s.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := s.Verify(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestRegisterStoresHashOnly(t *testing.T) {
	users := newFakeUsers()
	s := NewService(users)

	_, err := s.Register(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	stored := users.byEmail["a@x.com"].PasswordHash
	assert.NotEqual(t, "pw1", stored)
	assert.True(t, strings.HasPrefix(stored, "$2a$"), "expected a bcrypt hash, got %q", stored)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := NewService(newFakeUsers())
	ctx := context.Background()

	first, err := s.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = s.Register(ctx, "a@x.com", "pw2")
	require.ErrorIs(t, err, ErrEmailTaken)

	// The existing row is untouched: the original password still works and
	// resolves to the original user.
	got, err := s.Verify(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	_, err = s.Verify(ctx, "a@x.com", "pw2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyNoMatchIsUniform(t *testing.T) {
	s := NewService(newFakeUsers())
	ctx := context.Background()

	_, err := s.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	_, wrongPass := s.Verify(ctx, "a@x.com", "nope")
	_, unknownMail := s.Verify(ctx, "ghost@x.com", "pw1")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownMail, ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownMail)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	s := NewService(newFakeUsers())
	ctx := context.Background()

	id, err := s.Register(ctx, "  Anna@X.com ", "pw1")
	require.NoError(t, err)

	got, err := s.Verify(ctx, "anna@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestRegisterMissingCredentials(t *testing.T) {
	s := NewService(newFakeUsers())
	ctx := context.Background()

	_, err := s.Register(ctx, "", "pw1")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = s.Register(ctx, "a@x.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}
