package service

import "errors"

var (
	ErrDuplicateUser         = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrGitHubProfileNotFound = errors.New("github profile not found")
	ErrInvalidDate           = errors.New("invalid date")
)

// ErrGitHubResponseTooLarge is returned when the upstream body exceeds the read cap
var ErrGitHubResponseTooLarge = errors.New("github response too large")

// Token verification failures
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
)
