// Package seed provides the brewery list the tracker starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"droscher.com/BreweryTracker/pkg/model"
	"droscher.com/BreweryTracker/pkg/tracker"
)

//go:embed data/breweries.json
var builtIn []byte

// Load returns the built-in seed dataset, or the dataset at path when one is given.
func Load(path string, raters []string) ([]*model.Brewery, error) {
	data := builtIn

	if len(path) > 0 {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading seed file: %w", err)
		}

		data = fileData
	}

	breweries, err := tracker.Decode(data, raters)
	if err != nil {
		return nil, err
	}

	for _, brewery := range breweries {
		brewery.Visited = false
		brewery.VisitDate = nil
		brewery.Ratings = tracker.NewRatings(raters)
		brewery.AvgRating = 0
		brewery.Notes = ""
		brewery.UntappdURL = ""
	}

	return breweries, nil
}
