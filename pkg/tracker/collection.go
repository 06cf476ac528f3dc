package tracker

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.openly.dev/pointy"

	"droscher.com/BreweryTracker/pkg/model"
)

func IndexOf(breweries []*model.Brewery, key model.Key) int {
	for index, brewery := range breweries {
		if brewery.Name == key.Name && brewery.City == key.City {
			return index
		}
	}

	return -1
}

// Upsert replaces the brewery sharing the same name and city, or appends it.
func Upsert(breweries []*model.Brewery, brewery *model.Brewery) []*model.Brewery {
	if index := IndexOf(breweries, brewery.Key()); index >= 0 {
		breweries[index] = brewery

		return breweries
	}

	return append(breweries, brewery)
}

// Normalize fills in the rater set, recomputes the average and assigns an ID
// where missing.
func Normalize(brewery *model.Brewery, raters []string) {
	if brewery.Ratings == nil {
		brewery.Ratings = make(model.Ratings, len(raters))
	}

	for _, rater := range raters {
		if _, found := brewery.Ratings[rater]; !found {
			brewery.Ratings[rater] = 0
		}
	}

	brewery.AvgRating = AverageRating(brewery.Ratings)

	if len(brewery.ID) == 0 {
		brewery.ID = uuid.NewString()
	}
}

// NewBrewery validates a draft and builds the brewery record for it.
func NewBrewery(draft model.Draft, collectionSize int, raters []string, today time.Time) (*model.Brewery, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	rank := collectionSize + 1
	if draft.Rank != nil && *draft.Rank > 0 {
		rank = *draft.Rank
	}

	brewery := &model.Brewery{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(draft.Name),
		Rank:         rank,
		City:         strings.TrimSpace(draft.City),
		State:        strings.TrimSpace(draft.State),
		Address:      strings.TrimSpace(draft.Address),
		Lat:          *draft.Lat,
		Lng:          *draft.Lng,
		Ratings:      NewRatings(raters),
		Notes:        strings.TrimSpace(draft.Notes),
		FlagshipBeer: strings.TrimSpace(draft.FlagshipBeer),
		Distance:     pointy.Float64(0),
		IsCustom:     true,
	}

	if draft.Visited {
		if draft.VisitDate != nil && len(*draft.VisitDate) > 0 {
			if _, err := ParseVisitDate(*draft.VisitDate); err != nil {
				return nil, err
			}

			brewery.VisitDate = pointy.String(*draft.VisitDate)
		}

		SetVisited(brewery, true, today)
	}

	return brewery, nil
}

// ValidateDraft reports the first missing field in the order name, city,
// state, address, coordinates.
func ValidateDraft(draft model.Draft) error {
	required := []struct {
		field string
		value string
	}{
		{FieldName, draft.Name},
		{FieldCity, draft.City},
		{FieldState, draft.State},
		{FieldAddress, draft.Address},
	}

	for _, check := range required {
		if len(strings.TrimSpace(check.value)) == 0 {
			return &ValidationError{Field: check.field}
		}
	}

	if !validCoordinate(draft.Lat) || !validCoordinate(draft.Lng) {
		return &ValidationError{Field: FieldCoordinates}
	}

	return nil
}

// AddNew validates the draft and appends the resulting brewery.
func AddNew(breweries []*model.Brewery, draft model.Draft, raters []string, today time.Time) ([]*model.Brewery, *model.Brewery, error) {
	brewery, err := NewBrewery(draft, len(breweries), raters, today)
	if err != nil {
		return breweries, nil, err
	}

	if IndexOf(breweries, brewery.Key()) >= 0 {
		return breweries, nil, fmt.Errorf("%w: %s (%s)", ErrDuplicateBrewery, brewery.Name, brewery.City)
	}

	return append(breweries, brewery), brewery, nil
}

func validCoordinate(value *float64) bool {
	return value != nil && !math.IsNaN(*value) && !math.IsInf(*value, 0)
}
