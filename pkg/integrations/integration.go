package integrations

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BreweryTracker/configs"
	"droscher.com/BreweryTracker/pkg/integrations/nominatim"
	"droscher.com/BreweryTracker/pkg/integrations/untappd-web"
	"droscher.com/BreweryTracker/pkg/model"
)

// BreweryFinder looks breweries up on Untappd.
type BreweryFinder interface {
	FindBrewery(ctx context.Context, name string) ([]model.UntappdBrewery, error)
	FindBeers(ctx context.Context, breweryURL string) ([]model.UntappdBeer, error)
	EffectiveURL(brewery *model.Brewery) string
	FixURL(raw string, brewery *model.Brewery) string
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*model.Location, error)
}

func GetIntegration(name string, conf configs.Integrations, logger *zap.Logger) BreweryFinder {
	if name == untappdweb.IntegrationName {
		return untappdweb.NewUntappdWebIntegration(logger,
			untappdweb.WithBaseURL(conf.Untappd),
			untappdweb.WithUserAgent(conf.UserAgent),
		)
	}

	return nil
}

func GetGeocoder(name string, conf configs.Integrations, logger *zap.Logger) Geocoder {
	if name == nominatim.IntegrationName {
		return nominatim.NewGeocoder(logger,
			nominatim.WithBaseURL(conf.Geocoder),
			nominatim.WithUserAgent(conf.UserAgent),
		)
	}

	return nil
}
