package tracker

import (
	"fmt"
	"time"

	"go.openly.dev/pointy"

	"droscher.com/BreweryTracker/pkg/model"
)

// SetVisited updates the visited flag. The first time a brewery is marked as
// visited without a date it gets today's date. Unmarking keeps the date.
func SetVisited(brewery *model.Brewery, visited bool, today time.Time) {
	brewery.Visited = visited

	if visited && !brewery.HasVisitDate() {
		brewery.VisitDate = pointy.String(today.Format(model.DateLayout))
	}
}

func ParseVisitDate(date string) (time.Time, error) {
	parsed, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	return parsed, nil
}

// ApplyDetails applies the details form to a brewery. The form has no date
// when the brewery isn't visited, so the date is cleared in that case.
func ApplyDetails(brewery *model.Brewery, details model.Details, today time.Time) error {
	if details.Visited && details.VisitDate != nil && len(*details.VisitDate) > 0 {
		if _, err := ParseVisitDate(*details.VisitDate); err != nil {
			return err
		}
	}

	brewery.Visited = details.Visited
	brewery.Notes = details.Notes
	brewery.UntappdURL = details.UntappdURL

	if !details.Visited {
		brewery.VisitDate = nil

		return nil
	}

	if details.VisitDate != nil && len(*details.VisitDate) > 0 {
		brewery.VisitDate = pointy.String(*details.VisitDate)
	} else {
		brewery.VisitDate = pointy.String(today.Format(model.DateLayout))
	}

	return nil
}
