package enums

import (
	"errors"

	"github.com/on-the-ground/distinct_ive_go/valueset"
)

// ErrInvalidValue indicates that a requested value is not a member of the
// enumeration type it was requested from.
var ErrInvalidValue = errors.New("value is not a member of the enum type")

// Canonicalization sentinels, re-exported so callers can match every factory
// failure with errors.Is against this package alone.
var (
	ErrEmptyValueSet    = valueset.ErrEmptyValueSet
	ErrInvalidCharacter = valueset.ErrInvalidCharacter
)
