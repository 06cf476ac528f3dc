package untappdweb

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BreweryTracker/pkg/model"
)

type BreweryJSON struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
		BestRating  string  `json:"bestRating"`
		ReviewCount int     `json:"reviewCount"`
	} `json:"aggregateRating"`
	Address struct {
		StreetAddress   string `json:"streetAddress"`
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
	} `json:"address"`
}

// FindBrewery searches Untappd for rated breweries matching name.
func (u *UntappdWebIntegration) FindBrewery(ctx context.Context, name string) ([]model.UntappdBrewery, error) {
	collector := u.newCollector(ctx)

	var (
		errs    error
		results []model.UntappdBrewery
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		ratingString := element.ChildAttr(".rating > div.caps", "data-rating")
		rating, _ := strconv.ParseFloat(ratingString, 64)

		if rating > 0.0 {
			breweryURL := element.Request.AbsoluteURL(element.ChildAttr(".name > a", "href"))

			brewery, err := u.getBreweryFromURL(breweryURL, collector.Clone())
			if multierr.AppendInto(&errs, err) {
				return
			}

			results = append(results, brewery)
		}
	})

	u.logger.Info("searching untappd breweries", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit(u.baseURL+"/search?q="+url.QueryEscape(name)+"&type=brewery"))

	return results, errs
}

func (u *UntappdWebIntegration) getBreweryFromURL(breweryURL string, collector *colly.Collector) (model.UntappdBrewery, error) {
	brewery := model.UntappdBrewery{URL: breweryURL}

	collector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var breweryJSON BreweryJSON
		if err := json.Unmarshal([]byte(element.Text), &breweryJSON); err != nil {
			u.logger.Warn("failed to parse brewery details", zap.String("url", breweryURL), zap.Error(err))

			return
		}

		brewery.Name = breweryJSON.Name
		brewery.Description = breweryJSON.Description
		brewery.Locality = breweryJSON.Address.AddressLocality
		brewery.Region = stringPointer(breweryJSON.Address.AddressRegion)
		brewery.StreetAddress = stringPointer(breweryJSON.Address.StreetAddress)
		brewery.Rating = pointy.Float64(breweryJSON.AggregateRating.RatingValue)
	})

	collector.OnHTML("head meta[property='og:url']", func(element *colly.HTMLElement) {
		if id, ok := u.idFromLink(element.Attr("content")); ok {
			brewery.ExternalID = pointy.Uint64(id)
		}
	})

	collector.OnHTML("p.rss a", func(element *colly.HTMLElement) {
		if brewery.ExternalID != nil {
			return
		}

		if id, ok := u.idFromLink(element.Attr("href")); ok {
			brewery.ExternalID = pointy.Uint64(id)
		}
	})

	err := collector.Visit(breweryURL)

	return brewery, err
}

func (u *UntappdWebIntegration) idFromLink(link string) (uint64, bool) {
	idString := link[strings.LastIndex(link, "/")+1:]

	id, err := strconv.ParseUint(idString, 10, 64)
	if err != nil {
		u.logger.Error("failed to parse brewery id", zap.String("url", link), zap.Error(err))

		return 0, false
	}

	return id, true
}

func stringPointer(value string) *string {
	if len(value) > 0 {
		return &value
	}

	return nil
}
