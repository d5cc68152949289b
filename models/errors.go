package models

import "errors"

// Workflow error kinds. Handlers map each kind to its own HTTP status so the
// frontend can render a distinct prompt per failure.
var (
	ErrValidation        = errors.New("invalid input")
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("invalid visit status transition")
	ErrInvalidTransfer   = errors.New("invalid doctor transfer")
	ErrOverpayment       = errors.New("payment exceeds outstanding balance")
)
