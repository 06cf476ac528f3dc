package tracker

import (
	"math"
	"slices"
	"sort"
	"strings"

	"droscher.com/BreweryTracker/pkg/model"
)

const topListSize = 5

type Stats struct {
	TotalCount         int              `json:"totalCount"`
	VisitedCount       int              `json:"visitedCount"`
	VisitedPercentage  float64          `json:"visitedPercentage"`
	AvgOverallRating   float64          `json:"avgOverallRating"`
	TopRated           []*model.Brewery `json:"topRated"`
	RecentVisits       []*model.Brewery `json:"recentVisits"`
	StateCounts        map[string]int   `json:"stateCounts"`
	StateVisitedCounts map[string]int   `json:"stateVisitedCounts"`
}

type StateBreakdown struct {
	State      string  `json:"state"`
	Visited    int     `json:"visited"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

func ComputeStats(breweries []*model.Brewery) Stats {
	stats := Stats{
		TotalCount:         len(breweries),
		TopRated:           make([]*model.Brewery, 0, topListSize),
		RecentVisits:       make([]*model.Brewery, 0, topListSize),
		StateCounts:        make(map[string]int),
		StateVisitedCounts: make(map[string]int),
	}

	var (
		ratingSum float64
		rated     []*model.Brewery
		visits    []*model.Brewery
	)

	for _, brewery := range breweries {
		stats.StateCounts[brewery.State]++

		if brewery.Visited {
			stats.VisitedCount++
			stats.StateVisitedCounts[brewery.State]++

			if brewery.HasVisitDate() {
				visits = append(visits, brewery)
			}
		}

		if brewery.AvgRating > 0 {
			ratingSum += brewery.AvgRating
			rated = append(rated, brewery)
		}
	}

	if stats.TotalCount > 0 {
		stats.VisitedPercentage = roundToTenth(float64(stats.VisitedCount) / float64(stats.TotalCount) * 100) //nolint:mnd // percentage
	}

	if len(rated) > 0 {
		stats.AvgOverallRating = ratingSum / float64(len(rated))
	}

	slices.SortStableFunc(rated, func(a, b *model.Brewery) int {
		switch {
		case a.AvgRating > b.AvgRating:
			return -1
		case a.AvgRating < b.AvgRating:
			return 1
		default:
			return 0
		}
	})

	// ISO dates order lexically
	slices.SortStableFunc(visits, func(a, b *model.Brewery) int {
		return strings.Compare(*b.VisitDate, *a.VisitDate)
	})

	stats.TopRated = append(stats.TopRated, rated[:min(len(rated), topListSize)]...)
	stats.RecentVisits = append(stats.RecentVisits, visits[:min(len(visits), topListSize)]...)

	return stats
}

// StateBreakdown lists visited/total counts per state, sorted by state.
func (s Stats) StateBreakdown() []StateBreakdown {
	states := make([]string, 0, len(s.StateCounts))
	for state := range s.StateCounts {
		states = append(states, state)
	}

	sort.Strings(states)

	breakdown := make([]StateBreakdown, 0, len(states))

	for _, state := range states {
		row := StateBreakdown{
			State:   state,
			Visited: s.StateVisitedCounts[state],
			Total:   s.StateCounts[state],
		}

		if row.Total > 0 {
			row.Percentage = math.Round(float64(row.Visited) / float64(row.Total) * 100) //nolint:mnd // percentage
		}

		breakdown = append(breakdown, row)
	}

	return breakdown
}

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10 //nolint:mnd // one decimal place
}
