package cmd

import (
	"context"
	"errors"
	"fmt"

	"droscher.com/BreweryTracker/configs"
	"droscher.com/BreweryTracker/pkg/integrations"
	"droscher.com/BreweryTracker/pkg/integrations/nominatim"
	"droscher.com/BreweryTracker/pkg/integrations/untappd-web"
	"droscher.com/BreweryTracker/pkg/model"
)

var errNoIntegration = errors.New("integration not available")

type GeocodeCmd struct {
	ConfigFile string `default:".BreweryTracker.toml" help:"Path to config file" short:"c"`
	Address    string `arg:""                         help:"Address to look up"`
}

func (g *GeocodeCmd) Run(cliCtx *Context) error {
	logger := newLogger(false, cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(g.ConfigFile, logger)
	if err != nil {
		return err
	}

	geocoder := integrations.GetGeocoder(nominatim.IntegrationName, conf.Integrations, logger)
	if geocoder == nil {
		return errNoIntegration
	}

	location, err := geocoder.Geocode(context.Background(), g.Address)
	if err != nil {
		return err
	}

	fmt.Printf("%.6f, %.6f  %s\n", location.Lat, location.Lng, location.DisplayName)

	return nil
}

type UntappdCmd struct {
	ConfigFile string `default:".BreweryTracker.toml" help:"Path to config file" short:"c"`
	Name       string `arg:""                         help:"Brewery name"`
	City       string `help:"City of a tracked brewery; lists its beers from its Untappd page"`
}

func (u *UntappdCmd) Run(cliCtx *Context) error {
	logger := newLogger(false, cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	ctx := context.Background()

	env, err := openEnvironment(u.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	finder := integrations.GetIntegration(untappdweb.IntegrationName, env.conf.Integrations, logger)
	if finder == nil {
		return errNoIntegration
	}

	breweries, err := finder.FindBrewery(ctx, u.Name)
	if err != nil {
		return err
	}

	for _, brewery := range breweries {
		fmt.Printf("%-40s %s\n", brewery.Name, brewery.URL)
	}

	if len(u.City) == 0 {
		return nil
	}

	if err := env.loadCollection(ctx); err != nil {
		return err
	}

	tracked, err := env.store.Get(model.Key{Name: u.Name, City: u.City})
	if err != nil {
		return err
	}

	url := finder.EffectiveURL(tracked)
	fmt.Printf("\nBeers at %s\n", url)

	beers, err := finder.FindBeers(ctx, url)
	if err != nil {
		return err
	}

	for _, beer := range beers {
		fmt.Printf("  %-40s %-30s", beer.Name, beer.Style)

		if beer.ABV != nil {
			fmt.Printf(" %4.1f%%", *beer.ABV)
		}

		fmt.Println()
	}

	return nil
}
