package untappdweb

import (
	"context"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BreweryTracker/pkg/model"
)

type BeerScraped struct {
	IDLink string `attr:"href"        selector:"a.label"`
	Name   string `selector:".name > a"`
	Style  string `selector:".style"`
	ABV    string `selector:".abv"`
	IBU    string `selector:".ibu"`
	Rating string `attr:"data-rating" selector:".rating > div.caps"`
}

// FindBeers scrapes the beer list of the brewery page at breweryURL, in the
// order Untappd lists them. Used to suggest flagship beers.
func (u *UntappdWebIntegration) FindBeers(ctx context.Context, breweryURL string) ([]model.UntappdBeer, error) {
	collector := u.newCollector(ctx)

	var (
		errs    error
		results []model.UntappdBeer
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		scraped := BeerScraped{}

		err := element.Unmarshal(&scraped)
		if multierr.AppendInto(&errs, err) {
			u.logger.Error("failed to unmarshal scraped beer", zap.Error(err))

			return
		}

		beer := model.UntappdBeer{
			Name:   strings.TrimSpace(scraped.Name),
			Style:  strings.TrimSpace(scraped.Style),
			ABV:    extractABV(scraped),
			IBU:    extractIBU(scraped),
			Rating: extractRating(scraped),
		}

		idString := scraped.IDLink[strings.LastIndex(scraped.IDLink, "/")+1:]
		if id, err := strconv.ParseUint(idString, 10, 64); err == nil {
			beer.ExternalID = pointy.Uint64(id)
		}

		results = append(results, beer)
	})

	u.logger.Info("scraping brewery beer list", zap.String("url", breweryURL))
	multierr.AppendInto(&errs, collector.Visit(strings.TrimSuffix(breweryURL, "/")+"/beer"))

	return results, errs
}

func extractABV(details BeerScraped) *float64 {
	if index := strings.Index(details.ABV, "%"); index >= 0 {
		abv, err := strconv.ParseFloat(strings.TrimSpace(details.ABV[:index]), 64)
		if err == nil {
			return &abv
		}
	}

	return nil
}

func extractIBU(details BeerScraped) *uint64 {
	fields := strings.Fields(details.IBU)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "N/A") {
		return nil
	}

	ibu, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return nil
	}

	return pointy.Uint64(ibu)
}

func extractRating(details BeerScraped) *float64 {
	rating, err := strconv.ParseFloat(details.Rating, 64)
	if err != nil || rating <= 0 {
		return nil
	}

	return pointy.Float64(rating)
}
