package tracker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"droscher.com/BreweryTracker/pkg/model"
)

var (
	errNotAnArray      = errors.New("expected a JSON array of breweries")
	errMissingField    = errors.New("missing required field")
	errMissingLocation = errors.New("missing or invalid coordinates")
	errDuplicateKey    = errors.New("duplicate brewery")
)

// importedBrewery detects coordinates that are absent from the input, which
// would otherwise decode as 0.
type importedBrewery struct {
	model.Brewery
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// Export writes the collection as indented JSON.
func Export(writer io.Writer, breweries []*model.Brewery) error {
	if breweries == nil {
		breweries = []*model.Brewery{}
	}

	data, err := json.MarshalIndent(breweries, "", "  ")
	if err != nil {
		return err
	}

	_, err = writer.Write(data)

	return err
}

// Decode parses and validates an exported collection. Every problem found is
// reported in a single FormatError.
func Decode(data []byte, raters []string) ([]*model.Brewery, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, &FormatError{Err: errNotAnArray}
	}

	var imported []importedBrewery
	if err := json.Unmarshal(data, &imported); err != nil {
		return nil, &FormatError{Err: err}
	}

	var errs error

	breweries := make([]*model.Brewery, 0, len(imported))
	seen := make(map[model.Key]int, len(imported))

	for index := range imported {
		brewery, err := validateImported(imported[index], raters)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("record %d: %w", index, err))

			continue
		}

		if previous, found := seen[brewery.Key()]; found {
			errs = multierr.Append(errs, fmt.Errorf("record %d: %w: %s (%s) already at record %d", index, errDuplicateKey, brewery.Name, brewery.City, previous))

			continue
		}

		seen[brewery.Key()] = index

		Normalize(brewery, raters)
		breweries = append(breweries, brewery)
	}

	if errs != nil {
		return nil, &FormatError{Err: errs}
	}

	return breweries, nil
}

func validateImported(imported importedBrewery, raters []string) (*model.Brewery, error) {
	var errs error

	brewery := imported.Brewery

	if len(strings.TrimSpace(brewery.Name)) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s", errMissingField, FieldName))
	}

	if len(strings.TrimSpace(brewery.City)) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s", errMissingField, FieldCity))
	}

	if !validCoordinate(imported.Lat) || !validCoordinate(imported.Lng) {
		errs = multierr.Append(errs, errMissingLocation)
	} else {
		brewery.Lat = *imported.Lat
		brewery.Lng = *imported.Lng
	}

	for rater, value := range brewery.Ratings {
		if !slices.Contains(raters, rater) {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrUnknownRater, rater))
		}

		if value < MinRating || value > MaxRating {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s gave %d", ErrInvalidRating, rater, value))
		}
	}

	if brewery.HasVisitDate() {
		if _, err := ParseVisitDate(*brewery.VisitDate); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if brewery.Distance != nil && (math.IsNaN(*brewery.Distance) || *brewery.Distance < 0) {
		brewery.Distance = nil
	}

	if errs != nil {
		return nil, errs
	}

	return &brewery, nil
}
