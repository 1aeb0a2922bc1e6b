package services

import "errors"

// Error taxonomy shared by every service. Handlers map these at the HTTP
// boundary: validation and duplicate errors to 400, not-found to 404,
// wrong-secret to 401, everything else to a generic 500.
var (
	ErrValidation  = errors.New("invalid input")
	ErrDuplicate   = errors.New("already exists")
	ErrNotFound    = errors.New("not found")
	ErrWrongSecret = errors.New("wrong secret")
)
