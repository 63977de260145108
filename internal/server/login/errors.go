package login

import "errors"

// Auth outcome taxonomy. Every failure of Login/Signup wraps exactly one of
// these; match with errors.Is. Note that "user not found" and "wrong
// password" are deliberately distinct here — collapse them at the transport
// layer if the product needs enumeration resistance.
var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongPassword    = errors.New("wrong password")
	ErrUserExists       = errors.New("user already exists")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrStoreFailure     = errors.New("credential store failure")
)
