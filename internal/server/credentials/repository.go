// Package credentials owns the mapping from user name to password secret.
//
// Two interchangeable backends implement Repository: an in-memory map and a
// PostgreSQL table. Both must produce identical observable behavior for the
// same sequence of calls; the shared behavioral suite in this package's tests
// is run against each of them.
package credentials

import "context"

// Repository is the credential store capability contract.
//
// Query reports "not found" as an empty slice, never as an error; a non-nil
// error always means backend failure. The slice shape tolerates a backend
// that permits duplicates — callers must treat more than one row for a name
// as a broken uniqueness invariant.
type Repository interface {
	// Insert unconditionally records the pair. It performs no uniqueness
	// check of its own.
	Insert(ctx context.Context, userName, secret string) error

	// Query returns the records stored under userName.
	Query(ctx context.Context, userName string) ([]Credential, error)

	// CreateIfAbsent atomically records the pair unless userName already has
	// a record. It reports whether the insert happened. This is the primitive
	// that keeps two concurrent signups for one name from both succeeding.
	CreateIfAbsent(ctx context.Context, userName, secret string) (bool, error)
}
