package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BreweryTracker/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Brewery Tracker"), kong.Description("Brewery Tracker keeps track of brewery visits and ratings."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
