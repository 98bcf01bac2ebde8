package domain

import (
	"errors"
	"time"
)

var ErrHandleTaken = errors.New("handle already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrHandleMismatch = errors.New("handle does not match token claim")

// Account models a registered player. The secret is never stored in the
// clear; only its bcrypt hash survives registration.
type Account struct {
	Handle     string    `json:"handle"`
	SecretHash string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
