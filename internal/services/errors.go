package services

import "errors"

// Service errors, mapped to HTTP status codes by the handlers.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrConflict    = errors.New("conflict")
	ErrNotEligible = errors.New("not eligible") // folder entry without scrap/like
)
