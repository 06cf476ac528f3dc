package tracker

import (
	"strings"

	"droscher.com/BreweryTracker/pkg/model"
)

const AllStates = "all"

type VisitedStatus string

const (
	VisitedAll     VisitedStatus = "all"
	VisitedOnly    VisitedStatus = "visited"
	NotVisitedOnly VisitedStatus = "notVisited"
)

const UnratedMinRating = 0

// Criteria is the combination of list filters. The zero value matches every
// brewery. A MinRating of 0 selects unrated breweries only.
type Criteria struct {
	SearchText    string        `json:"searchText,omitempty"`
	State         string        `json:"state,omitempty"`
	VisitedStatus VisitedStatus `json:"visitedStatus,omitempty"`
	MinRating     *int          `json:"minRating,omitempty"`
}

func Matches(brewery *model.Brewery, criteria Criteria) bool {
	return matchesSearch(brewery, criteria.SearchText) &&
		matchesState(brewery, criteria.State) &&
		matchesVisited(brewery, criteria.VisitedStatus) &&
		matchesRating(brewery, criteria.MinRating)
}

// Filter returns the breweries matching the criteria in their original order.
func Filter(breweries []*model.Brewery, criteria Criteria) []*model.Brewery {
	matched := make([]*model.Brewery, 0, len(breweries))

	for _, brewery := range breweries {
		if Matches(brewery, criteria) {
			matched = append(matched, brewery)
		}
	}

	return matched
}

func matchesSearch(brewery *model.Brewery, searchText string) bool {
	if len(searchText) == 0 {
		return true
	}

	search := strings.ToLower(searchText)

	return strings.Contains(strings.ToLower(brewery.Name), search) ||
		strings.Contains(strings.ToLower(brewery.City), search)
}

func matchesState(brewery *model.Brewery, state string) bool {
	return len(state) == 0 || state == AllStates || brewery.State == state
}

func matchesVisited(brewery *model.Brewery, status VisitedStatus) bool {
	switch status {
	case VisitedOnly:
		return brewery.Visited
	case NotVisitedOnly:
		return !brewery.Visited
	default:
		return true
	}
}

func matchesRating(brewery *model.Brewery, minRating *int) bool {
	if minRating == nil {
		return true
	}

	if *minRating == UnratedMinRating {
		return brewery.AvgRating == 0
	}

	return brewery.AvgRating >= float64(*minRating)
}
