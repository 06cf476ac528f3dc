package grpc

import (
	"maps"

	"go.openly.dev/pointy"

	"droscher.com/BreweryTracker/pkg/model"
	api "droscher.com/BreweryTracker/pkg/server/grpc/api/v1"
	"droscher.com/BreweryTracker/pkg/tracker"
)

// URLResolver supplies the Untappd link shown for a brewery.
type URLResolver interface {
	EffectiveURL(brewery *model.Brewery) string
}

func BreweriesFromModel(breweries []*model.Brewery, resolver URLResolver) []*api.Brewery {
	pbBreweries := make([]*api.Brewery, 0, len(breweries))

	for _, brewery := range breweries {
		pbBreweries = append(pbBreweries, BreweryFromModel(brewery, resolver))
	}

	return pbBreweries
}

func BreweryFromModel(brewery *model.Brewery, resolver URLResolver) *api.Brewery {
	pbBrewery := api.Brewery{
		Id:            brewery.ID,
		Name:          brewery.Name,
		Rank:          int32(brewery.Rank), //nolint:gosec // ranks are small
		City:          brewery.City,
		State:         brewery.State,
		Address:       brewery.Address,
		Lat:           brewery.Lat,
		Lng:           brewery.Lng,
		Visited:       brewery.Visited,
		Ratings:       maps.Clone(brewery.Ratings),
		AvgRating:     brewery.AvgRating,
		Notes:         brewery.Notes,
		UntappdUrl:    brewery.UntappdURL,
		FlagshipBeer:  brewery.FlagshipBeer,
		FlagshipBeers: brewery.FlagshipBeers(),
		IsCustom:      brewery.IsCustom,
	}

	if brewery.HasVisitDate() {
		pbBrewery.VisitDate = pointy.String(*brewery.VisitDate)
	}

	if brewery.Distance != nil {
		pbBrewery.Distance = pointy.Float64(*brewery.Distance)
	}

	if resolver != nil {
		pbBrewery.EffectiveUntappdUrl = resolver.EffectiveURL(brewery)
	}

	return &pbBrewery
}

func KeyToModel(key *api.BreweryKey) model.Key {
	return model.Key{Name: key.GetName(), City: key.GetCity()}
}

func CriteriaToModel(criteria *api.Criteria) tracker.Criteria {
	if criteria == nil {
		return tracker.Criteria{}
	}

	result := tracker.Criteria{
		SearchText:    criteria.SearchText,
		State:         criteria.State,
		VisitedStatus: tracker.VisitedStatus(criteria.VisitedStatus),
	}

	if criteria.MinRating != nil {
		result.MinRating = pointy.Int(int(*criteria.MinRating))
	}

	return result
}

func DraftToModel(request *api.AddBreweryRequest) model.Draft {
	draft := model.Draft{
		Name:         request.Name,
		City:         request.City,
		State:        request.State,
		Address:      request.Address,
		Visited:      request.Visited,
		Notes:        request.Notes,
		FlagshipBeer: request.FlagshipBeer,
	}

	if request.Rank != nil {
		draft.Rank = pointy.Int(int(*request.Rank))
	}

	if request.Lat != nil {
		draft.Lat = pointy.Float64(*request.Lat)
	}

	if request.Lng != nil {
		draft.Lng = pointy.Float64(*request.Lng)
	}

	if request.VisitDate != nil {
		draft.VisitDate = pointy.String(*request.VisitDate)
	}

	return draft
}

func DetailsToModel(request *api.UpdateDetailsRequest) model.Details {
	details := model.Details{
		Visited:    request.Visited,
		Notes:      request.Notes,
		UntappdURL: request.UntappdUrl,
	}

	if request.VisitDate != nil {
		details.VisitDate = pointy.String(*request.VisitDate)
	}

	return details
}

func StatsFromModel(stats tracker.Stats, resolver URLResolver) *api.Stats {
	pbStats := api.Stats{
		TotalCount:        int32(stats.TotalCount),   //nolint:gosec // collection sizes are small
		VisitedCount:      int32(stats.VisitedCount), //nolint:gosec // collection sizes are small
		VisitedPercentage: stats.VisitedPercentage,
		AvgOverallRating:  stats.AvgOverallRating,
		TopRated:          BreweriesFromModel(stats.TopRated, resolver),
		RecentVisits:      BreweriesFromModel(stats.RecentVisits, resolver),
	}

	for _, state := range stats.StateBreakdown() {
		pbStats.States = append(pbStats.States, &api.StateBreakdown{
			State:      state.State,
			Visited:    int32(state.Visited), //nolint:gosec // collection sizes are small
			Total:      int32(state.Total),   //nolint:gosec // collection sizes are small
			Percentage: state.Percentage,
		})
	}

	return &pbStats
}

func UntappdBreweriesFromModel(breweries []model.UntappdBrewery) []*api.UntappdBrewery {
	pbBreweries := make([]*api.UntappdBrewery, 0, len(breweries))

	for _, brewery := range breweries {
		pbBreweries = append(pbBreweries, &api.UntappdBrewery{
			Name:          brewery.Name,
			Url:           brewery.URL,
			Description:   brewery.Description,
			StreetAddress: brewery.StreetAddress,
			Locality:      brewery.Locality,
			Region:        brewery.Region,
			ExternalId:    brewery.ExternalID,
			Rating:        brewery.Rating,
		})
	}

	return pbBreweries
}

func UntappdBeersFromModel(beers []model.UntappdBeer) []*api.UntappdBeer {
	pbBeers := make([]*api.UntappdBeer, 0, len(beers))

	for _, beer := range beers {
		pbBeers = append(pbBeers, &api.UntappdBeer{
			Name:       beer.Name,
			Style:      beer.Style,
			Abv:        beer.ABV,
			Ibu:        beer.IBU,
			Rating:     beer.Rating,
			ExternalId: beer.ExternalID,
		})
	}

	return pbBeers
}
