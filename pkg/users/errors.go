package users

import "errors"

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrTokenExpired          = errors.New("token expired")
	ErrInvalidTokenFormat    = errors.New("invalid token format")
	ErrInvalidTokenSignature = errors.New("invalid token signature")
)
