package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"

	"droscher.com/BreweryTracker/pkg/model"
	"droscher.com/BreweryTracker/pkg/tracker"
)

func TestHaversineDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{name: "same point", lat1: 39.0, lon1: -77.0, lat2: 39.0, lon2: -77.0, want: 0},
		{name: "one degree of latitude", lat1: 0, lon1: 0, lat2: 1, lon2: 0, want: 111},
		{name: "one degree of longitude at the equator", lat1: 0, lon1: 0, lat2: 0, lon2: 1, want: 111},
		{name: "antipodes", lat1: 0, lon1: 0, lat2: 0, lon2: 180, want: 20015},
		{name: "symmetric", lat1: 39.2098, lon1: -76.8712, lat2: 39.3347, lon2: -76.6468, want: 24},
		{name: "symmetric reversed", lat1: 39.3347, lon1: -76.6468, lat2: 39.2098, lon2: -76.8712, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tracker.HaversineDistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2), 0.0001)
		})
	}
}

func TestSortByDistance_IsStableAscending(t *testing.T) {
	breweries := []*model.Brewery{
		{Name: "far", Distance: pointy.Float64(120)},
		{Name: "near-a", Distance: pointy.Float64(5)},
		{Name: "mid", Distance: pointy.Float64(40)},
		{Name: "near-b", Distance: pointy.Float64(5)},
	}

	require.NoError(t, tracker.SortByDistance(breweries))

	assert.Equal(t, []string{"near-a", "near-b", "mid", "far"}, names(breweries))
}

func TestSortByDistance_RequiresDistances(t *testing.T) {
	breweries := []*model.Brewery{
		{Name: "known", Distance: pointy.Float64(3)},
		{Name: "unknown"},
	}

	err := tracker.SortByDistance(breweries)

	require.ErrorIs(t, err, tracker.ErrDistanceUnknown)
	assert.Equal(t, []string{"known", "unknown"}, names(breweries))
}

func TestApplyDistances(t *testing.T) {
	breweries := []*model.Brewery{
		{Name: "here", Lat: 39.0, Lng: -77.0},
		{Name: "north", Lat: 40.0, Lng: -77.0},
	}

	tracker.ApplyDistances(breweries, 39.0, -77.0)

	require.NotNil(t, breweries[0].Distance)
	assert.InDelta(t, 0.0, *breweries[0].Distance, 0.0001)
	assert.InDelta(t, 111.0, *breweries[1].Distance, 0.0001)
}

func TestSortByRank(t *testing.T) {
	breweries := []*model.Brewery{
		{Name: "third", Rank: 3},
		{Name: "first", Rank: 1},
		{Name: "tied-a", Rank: 2},
		{Name: "tied-b", Rank: 2},
	}

	tracker.SortByRank(breweries)

	assert.Equal(t, []string{"first", "tied-a", "tied-b", "third"}, names(breweries))
}
