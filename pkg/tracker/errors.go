package tracker

import (
	"errors"
	"fmt"

	"droscher.com/BreweryTracker/pkg/model"
)

var (
	ErrUnknownRater     = errors.New("unknown rater")
	ErrInvalidRating    = errors.New("rating must be between 0 and 5")
	ErrInvalidDate      = errors.New("visit date must be formatted as YYYY-MM-DD")
	ErrBreweryNotFound  = errors.New("brewery not found")
	ErrDuplicateBrewery = errors.New("a brewery with this name already exists in this city")
	ErrDistanceUnknown  = errors.New("distance has not been computed")
)

// Fields checked when adding a brewery, in the order they are validated.
const (
	FieldName        = "name"
	FieldCity        = "city"
	FieldState       = "state"
	FieldAddress     = "address"
	FieldCoordinates = "coordinates"
)

// ValidationError identifies the first missing or invalid field of a new brewery.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field == FieldCoordinates {
		return "validation failed: valid coordinates are required"
	}

	return fmt.Sprintf("validation failed: %s is required", e.Field)
}

// FormatError is returned when imported data is not a valid brewery collection.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return "invalid brewery data: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func notFound(key model.Key) error {
	return fmt.Errorf("%w: %s (%s)", ErrBreweryNotFound, key.Name, key.City)
}
