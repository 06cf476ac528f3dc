package tracker

import (
	"fmt"
	"slices"

	"droscher.com/BreweryTracker/pkg/model"
)

const (
	MinRating = 0
	MaxRating = 5
)

var DefaultRaters = []string{"KC", "Jeff", "Dave"}

func NewRatings(raters []string) model.Ratings {
	ratings := make(model.Ratings, len(raters))
	for _, rater := range raters {
		ratings[rater] = 0
	}

	return ratings
}

// AverageRating is the mean of the positive ratings, or 0 when nobody has rated.
func AverageRating(ratings model.Ratings) float64 {
	var sum, count int

	for _, value := range ratings {
		if value > 0 {
			sum += value
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return float64(sum) / float64(count)
}

// SetRating records a rater's score. Submitting the score the rater already
// gave clears it back to 0.
func SetRating(brewery *model.Brewery, raters []string, rater string, value int) error {
	if !slices.Contains(raters, rater) {
		return fmt.Errorf("%w: %q", ErrUnknownRater, rater)
	}

	if value < MinRating || value > MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, value)
	}

	if brewery.Ratings == nil {
		brewery.Ratings = NewRatings(raters)
	}

	if brewery.Ratings[rater] == value {
		brewery.Ratings[rater] = 0
	} else {
		brewery.Ratings[rater] = value
	}

	brewery.AvgRating = AverageRating(brewery.Ratings)

	return nil
}
