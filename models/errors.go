package models

import "errors"

var (
	ErrRecordNotFound     = errors.New("Record not found")
	ErrDuplicateStatement = errors.New("statement already exists for symbol and date")
	ErrMissingField       = errors.New("missing required field")
	ErrUnknownField       = errors.New("unknown field")
	ErrInvalidFieldValue  = errors.New("invalid field value")
	ErrInvalidSortField   = errors.New("invalid sort field")
	ErrInvalidSortOrder   = errors.New("invalid sort order")
	ErrUnknownStatement   = errors.New("invalid statement type")
)

// IsClientError reports whether err was caused by caller input rather than the
// store.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrMissingField,
		ErrUnknownField,
		ErrInvalidFieldValue,
		ErrInvalidSortField,
		ErrInvalidSortOrder,
		ErrUnknownStatement,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
