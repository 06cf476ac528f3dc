package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BreweryTracker/pkg/model"
)

const (
	IntegrationName  = "nominatim"
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "BreweryTracker/1.0"
)

var (
	ErrNoResults     = errors.New("no coordinates found for address")
	ErrEmptyAddress  = errors.New("address is required")
	errBadCoordinate = errors.New("invalid coordinate in geocoder response")
)

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocoder resolves street addresses with the OpenStreetMap Nominatim search API.
type Geocoder struct {
	logger    *zap.Logger
	baseURL   string
	userAgent string
}

type Option func(*Geocoder)

func WithBaseURL(baseURL string) Option {
	return func(g *Geocoder) {
		if len(baseURL) > 0 {
			g.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithUserAgent sets the user agent Nominatim's usage policy asks clients to identify with.
func WithUserAgent(userAgent string) Option {
	return func(g *Geocoder) {
		if len(userAgent) > 0 {
			g.userAgent = userAgent
		}
	}
}

func NewGeocoder(logger *zap.Logger, opts ...Option) *Geocoder {
	geocoder := &Geocoder{
		logger:    logger,
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(geocoder)
	}

	return geocoder
}

// Geocode returns the location of the best match for address.
func (g *Geocoder) Geocode(ctx context.Context, address string) (*model.Location, error) {
	address = strings.TrimSpace(address)
	if len(address) == 0 {
		return nil, ErrEmptyAddress
	}

	collector := colly.NewCollector(
		colly.UserAgent(g.userAgent),
		colly.StdlibContext(ctx),
	)

	var (
		errs   error
		places []place
	)

	collector.OnResponse(func(response *colly.Response) {
		multierr.AppendInto(&errs, json.Unmarshal(response.Body, &places))
	})

	collector.OnError(func(response *colly.Response, err error) {
		g.logger.Error("error while geocoding", zap.String("address", address), zap.Int("status", response.StatusCode), zap.Error(err))
	})

	multierr.AppendInto(&errs, collector.Visit(g.baseURL+"/search?format=json&limit=1&q="+url.QueryEscape(address)))

	if errs != nil {
		return nil, errs
	}

	if len(places) == 0 {
		g.logger.Info("address not found", zap.String("address", address))

		return nil, ErrNoResults
	}

	return toLocation(places[0])
}

func toLocation(found place) (*model.Location, error) {
	lat, latErr := strconv.ParseFloat(found.Lat, 64)
	lng, lngErr := strconv.ParseFloat(found.Lon, 64)

	if latErr != nil || lngErr != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, errBadCoordinate
	}

	return &model.Location{Lat: lat, Lng: lng, DisplayName: found.DisplayName}, nil
}
