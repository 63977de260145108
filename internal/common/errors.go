// Package common defines shared sentinel errors used across loginward
// components. Callers should use errors.Is to match these values.
package common

import "errors"

// Token lifecycle errors.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
