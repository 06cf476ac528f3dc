package tracker

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"go.openly.dev/pointy"

	"droscher.com/BreweryTracker/pkg/model"
)

const earthRadiusKm = 6371

// HaversineDistanceKm is the great-circle distance between two points, rounded
// to the nearest kilometre.
func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm * c)
}

// ApplyDistances sets each brewery's distance from the reference point.
func ApplyDistances(breweries []*model.Brewery, lat, lng float64) {
	for _, brewery := range breweries {
		brewery.Distance = pointy.Float64(HaversineDistanceKm(lat, lng, brewery.Lat, brewery.Lng))
	}
}

// SortByDistance orders breweries nearest first. Every brewery must already
// carry a distance.
func SortByDistance(breweries []*model.Brewery) error {
	for _, brewery := range breweries {
		if brewery.Distance == nil {
			return fmt.Errorf("%w: %s (%s)", ErrDistanceUnknown, brewery.Name, brewery.City)
		}
	}

	slices.SortStableFunc(breweries, func(a, b *model.Brewery) int {
		return cmp.Compare(*a.Distance, *b.Distance)
	})

	return nil
}

func SortByRank(breweries []*model.Brewery) {
	slices.SortStableFunc(breweries, func(a, b *model.Brewery) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180 //nolint:mnd // degrees in a half turn
}
