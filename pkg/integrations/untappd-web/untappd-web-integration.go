package untappdweb

import (
	"context"
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

const (
	IntegrationName  = "untappd_web"
	DefaultBaseURL   = "https://untappd.com"
	defaultUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"
)

type UntappdWebIntegration struct {
	logger    *zap.Logger
	baseURL   string
	userAgent string
}

type Option func(*UntappdWebIntegration)

// WithBaseURL points the scraper at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(u *UntappdWebIntegration) {
		if len(baseURL) > 0 {
			u.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(u *UntappdWebIntegration) {
		if len(userAgent) > 0 {
			u.userAgent = userAgent
		}
	}
}

func NewUntappdWebIntegration(logger *zap.Logger, opts ...Option) *UntappdWebIntegration {
	integration := &UntappdWebIntegration{
		logger:    logger,
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(integration)
	}

	return integration
}

func (u *UntappdWebIntegration) BaseURL() string {
	return u.baseURL
}

func (u *UntappdWebIntegration) newCollector(ctx context.Context) *colly.Collector {
	options := []colly.CollectorOption{
		colly.UserAgent(u.userAgent),
		colly.StdlibContext(ctx),
	}

	if parsed, err := url.Parse(u.baseURL); err == nil && len(parsed.Hostname()) > 0 {
		options = append(options, colly.AllowedDomains(parsed.Hostname()))
	}

	collector := colly.NewCollector(options...)

	collector.OnError(func(response *colly.Response, err error) {
		u.logger.Error("error while scraping untappd", zap.String("url", response.Request.URL.String()), zap.Int("status", response.StatusCode), zap.Error(err))
	})

	return collector
}
