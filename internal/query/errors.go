package query

import "errors"

// Validation failure classes. Every *ValidationError unwraps to one of
// these, so callers can branch with errors.Is.
var (
	// ErrYearOutOfRange is returned when the year is missing, not an
	// integer, or outside the supported interval.
	ErrYearOutOfRange = errors.New("year out of range")

	// ErrUnknownCategory is returned when the category is not in the catalog.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnexpectedSubcategory is returned when a subcategory is supplied
	// for a category that does not accept one.
	ErrUnexpectedSubcategory = errors.New("unexpected subcategory")

	// ErrUnknownSubcategory is returned when the subcategory is not one of
	// the category's subcategories.
	ErrUnknownSubcategory = errors.New("unknown subcategory")
)

// ValidationError describes why a request was rejected. Message is
// ready for the error envelope: it names the offending parameter and,
// where applicable, enumerates the valid values.
type ValidationError struct {
	Field   string // "year", "category" or "subcategory"
	Message string

	kind error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}
