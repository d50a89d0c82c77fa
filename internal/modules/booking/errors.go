package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotAvailable            = errors.New("venue not available")
	ErrForbidden               = errors.New("forbidden")
	ErrNotFound                = errors.New("booking not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrReasonRequired          = errors.New("cancellation reason required")
	ErrUnknownOption           = errors.New("unknown service option")
)
