package catalog

import "errors"

var (
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidVenueType = errors.New("invalid venue type")
	ErrNotFound         = errors.New("not found")
)
