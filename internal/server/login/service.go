// Package login orchestrates authentication and registration: parse the raw
// request, consult the credential store, validate, and (on login) have the
// session manager issue a token.
//
// The check order in both flows is part of the contract: parse errors win
// over everything, then not-found/exists, then the secret/repeat check, and
// only then any mutation. It decides which error a request that is wrong in
// several ways surfaces.
package login

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/askarpov/loginward/internal/server/credentials"
	"github.com/askarpov/loginward/internal/server/forms"
	"github.com/askarpov/loginward/internal/server/sessions"
)

type Service struct {
	repo     credentials.Repository
	sessions *sessions.Manager
}

func NewService(repo credentials.Repository, sessions *sessions.Manager) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// Login authenticates the raw request body and returns a session token.
func (s *Service) Login(ctx context.Context, raw []byte) (string, error) {
	form, err := forms.ParseLogin(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	rows, err := s.repo.Query(ctx, form.UserName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("user %s: %w", form.UserName, ErrUserNotFound)
	}
	mustBeSingle(rows)

	if !secretsEqual(rows[0].Secret, form.Password) {
		return "", ErrWrongPassword
	}

	token, err := s.sessions.Issue(form.UserName)
	if err != nil {
		return "", fmt.Errorf("issuing session token: %w", err)
	}

	return token, nil
}

// Signup registers the raw request body as a new credential record.
func (s *Service) Signup(ctx context.Context, raw []byte) error {
	form, err := forms.ParseSignup(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	rows, err := s.repo.Query(ctx, form.UserName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	mustBeSingle(rows)
	if len(rows) > 0 {
		return fmt.Errorf("user %s: %w", form.UserName, ErrUserExists)
	}

	if form.Password != form.PasswordRepeat {
		return ErrPasswordMismatch
	}

	inserted, err := s.repo.CreateIfAbsent(ctx, form.UserName, form.Password)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if !inserted {
		// Lost a race with a concurrent signup for the same name.
		return fmt.Errorf("user %s: %w", form.UserName, ErrUserExists)
	}

	return nil
}

// mustBeSingle panics when a unique key resolves to more than one record.
// That state means the store's uniqueness invariant is broken; it is a fault,
// not an error the caller can act on.
func mustBeSingle(rows []credentials.Credential) {
	if len(rows) > 1 {
		panic(fmt.Sprintf("credential store invariant broken: %d records for user %q", len(rows), rows[0].UserName))
	}
}

func secretsEqual(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
