package cmd

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"droscher.com/BreweryTracker/pkg/autosync"
	"droscher.com/BreweryTracker/pkg/tracker"
)

const nearbyDefaultLimit = 10

type ImportCmd struct {
	ConfigFile string `default:".BreweryTracker.toml" help:"Path to config file" short:"c"`
	File       string `arg:""                         help:"Exported JSON file"    type:"existingfile"`
}

func (i *ImportCmd) Run(cliCtx *Context) error {
	logger := newLogger(false, cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	env, err := openEnvironment(i.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	data, err := os.ReadFile(i.File)
	if err != nil {
		return err
	}

	if err := env.store.Import(data); err != nil {
		return err
	}

	if err := env.repo.SaveBreweries(context.Background(), env.store.Breweries()); err != nil {
		logger.Error("error saving breweries", zap.Error(err))

		return err
	}

	logger.Info("imported breweries", zap.String("file", i.File), zap.Int("count", env.store.Len()))

	return nil
}

type ExportCmd struct {
	ConfigFile string `default:".BreweryTracker.toml" help:"Path to config file" short:"c"`
	Output     string `help:"Write to this file instead of stdout" short:"o"`
}

func (e *ExportCmd) Run(cliCtx *Context) error {
	logger := newLogger(false, cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	env, err := openEnvironment(e.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.loadCollection(context.Background()); err != nil {
		return err
	}

	if len(e.Output) == 0 {
		return env.store.Export(os.Stdout)
	}

	file, err := os.Create(e.Output)
	if err != nil {
		return err
	}
	defer file.Close()

	return env.store.Export(file)
}

type StatsCmd struct {
	ConfigFile string `default:".BreweryTracker.toml" help:"Path to config file" short:"c"`
}

func (s *StatsCmd) Run(cliCtx *Context) error {
	logger := newLogger(false, cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	env, err := openEnvironment(s.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.loadCollection(context.Background()); err != nil {
		return err
	}

	stats := env.store.Stats()

	fmt.Printf("Visited %d of %d breweries (%.1f%%)\n", stats.VisitedCount, stats.TotalCount, stats.VisitedPercentage)
	fmt.Printf("Average rating %.1f\n", stats.AvgOverallRating)

	fmt.Println("\nTop rated")

	for _, brewery := range stats.TopRated {
		fmt.Printf("  %-40s %-20s %.1f\n", brewery.Name, brewery.City, brewery.AvgRating)
	}

	fmt.Println("\nRecent visits")

	for _, brewery := range stats.RecentVisits {
		fmt.Printf("  %-40s %-20s %s\n", brewery.Name, brewery.City, *brewery.VisitDate)
	}

	fmt.Println("\nBy state")

	for _, state := range stats.StateBreakdown() {
		fmt.Printf("  %-4s %3d/%-3d %3.0f%%\n", state.State, state.Visited, state.Total, state.Percentage)
	}

	return nil
}

type NearbyCmd struct {
	ConfigFile string  `default:".BreweryTracker.toml" help:"Path to config file"                      short:"c"`
	Lat        float64 `help:"Latitude of the reference point"  required:""`
	Lng        float64 `help:"Longitude of the reference point" required:""`
	Limit      int     `default:"10"                     help:"Number of breweries to list"`
	NotVisited bool    `help:"Only list breweries not visited yet"`
}

func (n *NearbyCmd) Run(cliCtx *Context) error {
	logger := newLogger(false, cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	env, err := openEnvironment(n.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.loadCollection(context.Background()); err != nil {
		return err
	}

	if err := env.store.SortByDistanceFrom(n.Lat, n.Lng); err != nil {
		return err
	}

	criteria := tracker.Criteria{}
	if n.NotVisited {
		criteria.VisitedStatus = tracker.NotVisitedOnly
	}

	limit := n.Limit
	if limit <= 0 {
		limit = nearbyDefaultLimit
	}

	breweries := env.store.Filter(criteria)

	for _, brewery := range breweries[:min(limit, len(breweries))] {
		fmt.Printf("%7.1f km  %-40s %s, %s\n", *brewery.Distance, brewery.Name, brewery.City, brewery.State)
	}

	return nil
}

type SyncCmd struct {
	ConfigFile string `default:".BreweryTracker.toml" help:"Path to config file" short:"c"`
	AutoSync   string `enum:"on,off,keep" default:"keep" help:"Turn auto sync on or off"`
}

func (s *SyncCmd) Run(cliCtx *Context) error {
	logger := newLogger(false, cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	ctx := context.Background()

	env, err := openEnvironment(s.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.loadCollection(ctx); err != nil {
		return err
	}

	syncer := autosync.New(env.store, env.repo, logger)
	defer syncer.Close()

	if s.AutoSync != "keep" {
		if _, err := syncer.SetAutoSync(ctx, s.AutoSync == "on"); err != nil {
			return err
		}
	}

	settings, err := syncer.Sync(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Synchronized %d breweries at %s (auto sync %t)\n", env.store.Len(), settings.LastSyncTime.Format("2006-01-02 15:04:05"), settings.AutoSyncEnabled)

	return nil
}
