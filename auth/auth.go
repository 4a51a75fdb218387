// Package auth implements account registration and credential verification.
// Passwords are stored as bcrypt hashes only.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"reiseplaner/models"
	"reiseplaner/store"
)

var (
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("auth: email already registered")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrMissingCredentials is returned when email or password is empty.
	ErrMissingCredentials = errors.New("auth: email and password are required")
)

// dummyHash is compared against when the email is unknown, so Verify costs a
// bcrypt round either way and does not reveal whether the email exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Service is the credential store: it creates users and checks logins.
type Service struct {
	users store.Users
}

func NewService(users store.Users) *Service {
	return &Service{users: users}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user and returns its ID. The email must not be in
// use yet; uniqueness is enforced by the database constraint, so concurrent
// registrations of the same address cannot both succeed.
func (s *Service) Register(ctx context.Context, email, password string) (int64, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return 0, ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("creating user: %w", err)
	}
	return user.ID, nil
}

// Verify checks email and password and returns the user ID on success.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *Service) Verify(ctx context.Context, email, password string) (int64, error) {
	user, err := s.users.ByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a bcrypt round anyway so the miss is not cheaper
			// than a hit.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return 0, ErrInvalidCredentials
		}
		return 0, fmt.Errorf("looking up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}
