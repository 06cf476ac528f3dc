package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                                      help:"Run the server"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations"`
	Import  ImportCmd  `cmd:"" help:"Replace the saved collection with an exported JSON file"`
	Export  ExportCmd  `cmd:"" help:"Write the saved collection as JSON"`
	Stats   StatsCmd   `cmd:"" help:"Show visit and rating statistics"`
	Nearby  NearbyCmd  `cmd:"" help:"List breweries nearest to a location"`
	Geocode GeocodeCmd `cmd:"" help:"Look up the coordinates of an address"`
	Untappd UntappdCmd `cmd:"" help:"Search Untappd for a brewery and its beers"`
	Sync    SyncCmd    `cmd:"" help:"Save the collection and update the last sync time"`
}
