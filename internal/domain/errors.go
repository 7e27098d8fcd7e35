package domain

import "errors"

// Domain errors
var (
	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrWrongRole        = errors.New("identity role does not permit this view")

	// Booking attempt errors
	ErrSubmitInFlight = errors.New("a booking submission is already in flight")
	ErrAttemptNotOpen = errors.New("booking form is not open")
	ErrStaleAttempt   = errors.New("booking attempt was torn down")

	// Validation errors
	ErrInvalidTrain    = errors.New("invalid train record")
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrInvalidAge      = errors.New("passenger age must be a positive integer")
	ErrInvalidGender   = errors.New("passenger gender must be M, F or Other")
	ErrEmptyName       = errors.New("passenger name is required")
	ErrEmptyPhone      = errors.New("passenger phone is required")
	ErrEmptyPNR        = errors.New("pnr is required")
)
