// Package auth implements account signup, login and password reset on top
// of the user store. Passwords are stored as bcrypt hashes, which carry a
// per-account salt and compare in constant time.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aditir/eduterm/internal/store"
)

var (
	// ErrEmailTaken is returned by SignUp when the email is registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Login on any email/password
	// mismatch. The two cases are not distinguished to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned by ResetPassword for an unknown email.
	ErrNotFound = errors.New("no account with that email")

	// ErrPasswordMismatch is returned when a password and its
	// confirmation field differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrMissingFields is returned when email or password is empty.
	ErrMissingFields = errors.New("email and password are required")
)

// Account is an authenticated user, stripped of credential material.
type Account struct {
	ID        int
	Email     string
	CreatedAt time.Time
}

// Service answers create/verify/reset requests against the user store.
type Service struct {
	users store.UserRepo
}

// NewService creates an auth service backed by the given repository.
func NewService(users store.UserRepo) *Service {
	return &Service{users: users}
}

// SignUp registers a new account. Returns ErrEmailTaken when the email is
// already present; the existing account is left untouched.
func (s *Service) SignUp(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.users.Create(ctx, email, string(hash))
	if errors.Is(err, store.ErrEmailExists) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns the account on success.
// Any mismatch, unknown email included, yields ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*Account, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	u, err := s.users.ByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &Account{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}, nil
}

// ResetPassword overwrites the stored hash for email unconditionally.
// It requires no proof of ownership before resetting: any registered
// email can have its password replaced. That authorization gap exists in
// the product's observed behavior and is kept, not fixed, here.
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.users.UpdatePassword(ctx, email, string(hash))
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}

// CheckConfirmation verifies that a password and its confirmation field
// agree before a reset is attempted.
func CheckConfirmation(password, confirmation string) error {
	if password != confirmation {
		return ErrPasswordMismatch
	}
	return nil
}
