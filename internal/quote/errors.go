package quote

import (
	"errors"

	"cleaning-quote/internal/validation"
)

var (
	ErrNotFound           = errors.New("quote not found")
	ErrUnknownVendor      = errors.New("unknown vendor")
	ErrUnknownMode        = errors.New("unknown mode")
	ErrInvalid            = errors.New("quote is invalid")
	ErrSubmissionInFlight = errors.New("submission already in progress")
	ErrSubmissionFailed   = errors.New("submission failed")
	ErrAlreadySubmitted   = errors.New("quote already submitted")
)

// InvalidError carries the failed fields of a refused submission.
type InvalidError struct {
	Errors validation.Errors
}

func (e *InvalidError) Error() string {
	return ErrInvalid.Error() + ": " + e.Errors.Error()
}

func (e *InvalidError) Unwrap() error { return ErrInvalid }
