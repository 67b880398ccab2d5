package service

import "errors"

// Error taxonomy shared by all services. Handlers map these onto HTTP
// statuses; anything else is treated as an internal error.
var (
	ErrDuplicateUsername  = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("not found")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrAlreadyRated       = errors.New("album already rated by this user")
	ErrInvalidRating      = errors.New("rating must be a half-star value between 0.5 and 5")
)
