package tracker_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"

	"droscher.com/BreweryTracker/pkg/model"
	"droscher.com/BreweryTracker/pkg/tracker"
)

func TestComputeStats_EmptyCollection(t *testing.T) {
	stats := tracker.ComputeStats(nil)

	assert.Zero(t, stats.TotalCount)
	assert.Zero(t, stats.VisitedCount)
	assert.Zero(t, stats.VisitedPercentage)
	assert.Zero(t, stats.AvgOverallRating)
	assert.Empty(t, stats.TopRated)
	assert.NotNil(t, stats.TopRated)
	assert.Empty(t, stats.RecentVisits)
	assert.Empty(t, stats.StateCounts)
}

func TestComputeStats_SingleRatedBrewery(t *testing.T) {
	breweries := []*model.Brewery{
		{Name: "A", City: "X", State: "MD", Ratings: model.Ratings{"K": 4, "J": 0, "D": 0}},
		{Name: "B", City: "Y", State: "PA", Ratings: model.Ratings{"K": 0, "J": 0, "D": 0}},
	}
	for _, brewery := range breweries {
		tracker.Normalize(brewery, testRaters)
	}

	stats := tracker.ComputeStats(breweries)

	assert.Equal(t, 0, stats.VisitedCount)
	assert.Equal(t, 2, stats.TotalCount)
	assert.InDelta(t, 4.0, stats.AvgOverallRating, 0.0001)
	require.Len(t, stats.TopRated, 1)
	assert.Equal(t, "A", stats.TopRated[0].Name)
	assert.Equal(t, map[string]int{"MD": 1, "PA": 1}, stats.StateCounts)
	assert.Empty(t, stats.StateVisitedCounts)
}

func TestComputeStats_VisitedPercentageIsRounded(t *testing.T) {
	breweries := []*model.Brewery{
		{Name: "A", State: "MD", Visited: true},
		{Name: "B", State: "MD"},
		{Name: "C", State: "VA"},
	}

	stats := tracker.ComputeStats(breweries)

	assert.Equal(t, 1, stats.VisitedCount)
	assert.InDelta(t, 33.3, stats.VisitedPercentage, 0.00001)
	assert.Equal(t, map[string]int{"MD": 1}, stats.StateVisitedCounts)
}

func TestComputeStats_TopRatedIsStableAndTruncated(t *testing.T) {
	ratings := []float64{3, 5, 4, 5, 2, 4, 1}
	breweries := make([]*model.Brewery, 0, len(ratings))

	for index, rating := range ratings {
		breweries = append(breweries, &model.Brewery{Name: fmt.Sprintf("B%d", index), AvgRating: rating})
	}

	stats := tracker.ComputeStats(breweries)

	assert.Equal(t, []string{"B1", "B3", "B2", "B5", "B0"}, names(stats.TopRated))
	assert.InDelta(t, 24.0/7.0, stats.AvgOverallRating, 0.0001)
}

func TestComputeStats_RecentVisits(t *testing.T) {
	breweries := []*model.Brewery{
		{Name: "Old", Visited: true, VisitDate: pointy.String("2023-01-15")},
		{Name: "Undated", Visited: true},
		{Name: "Unvisited", Visited: false, VisitDate: pointy.String("2025-06-01")},
		{Name: "Newest", Visited: true, VisitDate: pointy.String("2025-03-02")},
		{Name: "Middle", Visited: true, VisitDate: pointy.String("2024-11-30")},
		{Name: "Older", Visited: true, VisitDate: pointy.String("2022-07-04")},
		{Name: "Oldest", Visited: true, VisitDate: pointy.String("2021-02-01")},
		{Name: "Ancient", Visited: true, VisitDate: pointy.String("2019-05-05")},
	}

	stats := tracker.ComputeStats(breweries)

	assert.Equal(t, []string{"Newest", "Middle", "Old", "Older", "Oldest"}, names(stats.RecentVisits))
	assert.Equal(t, 7, stats.VisitedCount)
}

func TestComputeStats_IsIdempotent(t *testing.T) {
	breweries := filterFixture()

	first := tracker.ComputeStats(breweries)
	second := tracker.ComputeStats(breweries)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Sapwood Cellars", "Union Craft Brewing", "Tired Hands", "The Veil"}, names(breweries))
}

func TestStats_StateBreakdown(t *testing.T) {
	stats := tracker.ComputeStats(filterFixture())

	assert.Equal(t, []tracker.StateBreakdown{
		{State: "MD", Visited: 1, Total: 2, Percentage: 50},
		{State: "PA", Visited: 1, Total: 1, Percentage: 100},
		{State: "VA", Visited: 0, Total: 1, Percentage: 0},
	}, stats.StateBreakdown())
}
