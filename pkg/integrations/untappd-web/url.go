package untappdweb

import (
	"net/url"
	"regexp"
	"strings"

	"droscher.com/BreweryTracker/pkg/model"
)

var (
	breweryTypeSuffix = regexp.MustCompile(`(?i)\s+(Brewery|Brewing|Brewpub|Brew\s+Pub|Brewing\s+Company|Brewing\s+Co\.?|Beer\s+Co\.?|Brew\s+Co\.?)$`)
	nonAlphanumeric   = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespace        = regexp.MustCompile(`\s+`)

	// Breweries whose Untappd page doesn't follow the naming pattern.
	specialCases = []struct {
		contains string
		path     string
	}{
		{contains: "Sapwood Cellars", path: "Sapwood_Cellars"},
		{contains: "Black Flag", path: "BlackFlagBrewingCompany"},
	}

	typos = strings.NewReplacer("untaped.com", "untappd.com", "untapd.com", "untappd.com")
)

// GenerateURL guesses the Untappd page of a brewery from its name.
func (u *UntappdWebIntegration) GenerateURL(brewery *model.Brewery) string {
	return u.baseURL + "/" + PagePath(brewery.Name)
}

// EffectiveURL is the stored Untappd URL, or the generated one when none was set.
func (u *UntappdWebIntegration) EffectiveURL(brewery *model.Brewery) string {
	if stored := strings.TrimSpace(brewery.UntappdURL); len(stored) > 0 {
		return stored
	}

	return u.GenerateURL(brewery)
}

// FixURL repairs the common mistakes in a hand-entered Untappd URL. An empty
// URL is replaced with the generated one.
func (u *UntappdWebIntegration) FixURL(raw string, brewery *model.Brewery) string {
	fixed := strings.TrimSpace(raw)
	if len(fixed) == 0 {
		return u.GenerateURL(brewery)
	}

	if !strings.HasPrefix(fixed, "http") {
		fixed = "https://" + fixed
	}

	if strings.Contains(fixed, "untappd.com/search") {
		if parsed, err := url.Parse(fixed); err == nil {
			if terms := parsed.Query().Get("q"); len(terms) > 0 {
				fixed = DefaultBaseURL + "/" + whitespace.ReplaceAllString(terms, "_")
			}
		}
	}

	return typos.Replace(fixed)
}

// PagePath is the Untappd page name for a brewery name.
func PagePath(name string) string {
	for _, special := range specialCases {
		if strings.Contains(name, special.contains) {
			return special.path
		}
	}

	formatted := breweryTypeSuffix.ReplaceAllString(name, "")
	formatted = strings.TrimSpace(formatted)
	formatted = nonAlphanumeric.ReplaceAllString(formatted, "")

	return whitespace.ReplaceAllString(formatted, "_")
}
