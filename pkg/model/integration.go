package model

// UntappdBrewery is a brewery found on Untappd.
type UntappdBrewery struct {
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	Description   string   `json:"description,omitempty"`
	StreetAddress *string  `json:"streetAddress,omitempty"`
	Locality      string   `json:"locality"`
	Region        *string  `json:"region,omitempty"`
	ExternalID    *uint64  `json:"externalId,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}

// UntappdBeer is one entry of a brewery's beer list, used to suggest flagship beers.
type UntappdBeer struct {
	Name       string   `json:"name"`
	Style      string   `json:"style"`
	ABV        *float64 `json:"abv,omitempty"`
	IBU        *uint64  `json:"ibu,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	ExternalID *uint64  `json:"externalId,omitempty"`
}

type Location struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"displayName"`
}
