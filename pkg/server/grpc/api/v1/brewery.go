// Package apiv1 holds the messages of the brewerytracker.v1 API. They are
// exchanged as JSON.
package apiv1

import "time"

const (
	SortRank     = "rank"
	SortDistance = "distance"
)

type Brewery struct {
	Id                  string         `json:"id"`
	Name                string         `json:"name"`
	Rank                int32          `json:"rank"`
	City                string         `json:"city"`
	State               string         `json:"state"`
	Address             string         `json:"address"`
	Lat                 float64        `json:"lat"`
	Lng                 float64        `json:"lng"`
	Visited             bool           `json:"visited"`
	VisitDate           *string        `json:"visitDate,omitempty"`
	Ratings             map[string]int `json:"ratings"`
	AvgRating           float64        `json:"avgRating"`
	Notes               string         `json:"notes"`
	UntappdUrl          string         `json:"untappdUrl"`
	EffectiveUntappdUrl string         `json:"effectiveUntappdUrl,omitempty"`
	FlagshipBeer        string         `json:"flagshipBeer,omitempty"`
	FlagshipBeers       []string       `json:"flagshipBeers,omitempty"`
	Distance            *float64       `json:"distance,omitempty"`
	IsCustom            bool           `json:"isCustom"`
}

type BreweryKey struct {
	Name string `json:"name"`
	City string `json:"city"`
}

func (x *BreweryKey) GetName() string {
	if x != nil {
		return x.Name
	}

	return ""
}

func (x *BreweryKey) GetCity() string {
	if x != nil {
		return x.City
	}

	return ""
}

type Criteria struct {
	SearchText    string `json:"searchText,omitempty"`
	State         string `json:"state,omitempty"`
	VisitedStatus string `json:"visitedStatus,omitempty"`
	MinRating     *int32 `json:"minRating,omitempty"`
}

type ListBreweriesRequest struct {
	Criteria *Criteria `json:"criteria,omitempty"`
	Sort     string    `json:"sort,omitempty"`
	Lat      *float64  `json:"lat,omitempty"`
	Lng      *float64  `json:"lng,omitempty"`
}

func (x *ListBreweriesRequest) GetCriteria() *Criteria {
	if x != nil {
		return x.Criteria
	}

	return nil
}

type ListBreweriesResponse struct {
	Breweries []*Brewery `json:"breweries"`
}

// GetBreweryRequest selects a brewery by Id, or by Key when Id is empty.
type GetBreweryRequest struct {
	Id  string      `json:"id,omitempty"`
	Key *BreweryKey `json:"key,omitempty"`
}

func (x *GetBreweryRequest) GetKey() *BreweryKey {
	if x != nil {
		return x.Key
	}

	return nil
}

type GetBreweryResponse struct {
	Brewery *Brewery `json:"brewery"`
}

type GetStatsRequest struct{}

type StateBreakdown struct {
	State      string  `json:"state"`
	Visited    int32   `json:"visited"`
	Total      int32   `json:"total"`
	Percentage float64 `json:"percentage"`
}

type Stats struct {
	TotalCount        int32             `json:"totalCount"`
	VisitedCount      int32             `json:"visitedCount"`
	VisitedPercentage float64           `json:"visitedPercentage"`
	AvgOverallRating  float64           `json:"avgOverallRating"`
	TopRated          []*Brewery        `json:"topRated"`
	RecentVisits      []*Brewery        `json:"recentVisits"`
	States            []*StateBreakdown `json:"states"`
}

type GetStatsResponse struct {
	Stats *Stats `json:"stats"`
}

type SetRatingRequest struct {
	Key    *BreweryKey `json:"key"`
	Rater  string      `json:"rater,omitempty"`
	Rating int32       `json:"rating"`
}

func (x *SetRatingRequest) GetKey() *BreweryKey {
	if x != nil {
		return x.Key
	}

	return nil
}

type SetRatingResponse struct {
	Brewery *Brewery `json:"brewery"`
}

type SetVisitedRequest struct {
	Key     *BreweryKey `json:"key"`
	Visited bool        `json:"visited"`
}

func (x *SetVisitedRequest) GetKey() *BreweryKey {
	if x != nil {
		return x.Key
	}

	return nil
}

type SetVisitedResponse struct {
	Brewery *Brewery `json:"brewery"`
}

type ToggleVisitedRequest struct {
	Key *BreweryKey `json:"key"`
}

func (x *ToggleVisitedRequest) GetKey() *BreweryKey {
	if x != nil {
		return x.Key
	}

	return nil
}

type ToggleVisitedResponse struct {
	Brewery *Brewery `json:"brewery"`
}

type UpdateDetailsRequest struct {
	Key        *BreweryKey `json:"key"`
	Visited    bool        `json:"visited"`
	VisitDate  *string     `json:"visitDate,omitempty"`
	Notes      string      `json:"notes"`
	UntappdUrl string      `json:"untappdUrl"`
	// FixUntappdUrl repairs common mistakes in UntappdUrl before saving.
	FixUntappdUrl bool `json:"fixUntappdUrl,omitempty"`
}

func (x *UpdateDetailsRequest) GetKey() *BreweryKey {
	if x != nil {
		return x.Key
	}

	return nil
}

type UpdateDetailsResponse struct {
	Brewery *Brewery `json:"brewery"`
}

type AddBreweryRequest struct {
	Name         string   `json:"name"`
	Rank         *int32   `json:"rank,omitempty"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Address      string   `json:"address"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	Visited      bool     `json:"visited"`
	VisitDate    *string  `json:"visitDate,omitempty"`
	Notes        string   `json:"notes"`
	FlagshipBeer string   `json:"flagshipBeer"`
	// Geocode looks the coordinates up from Address when Lat or Lng is missing.
	Geocode bool `json:"geocode,omitempty"`
}

type AddBreweryResponse struct {
	Brewery *Brewery `json:"brewery"`
}

type ImportCollectionRequest struct {
	Data string `json:"data"`
}

type ImportCollectionResponse struct {
	Count int32 `json:"count"`
}

type ExportCollectionRequest struct{}

type ExportCollectionResponse struct {
	Data string `json:"data"`
}

// SyncRequest saves the collection now. AutoSyncEnabled, when set, changes
// the auto sync toggle first.
type SyncRequest struct {
	AutoSyncEnabled *bool `json:"autoSyncEnabled,omitempty"`
}

type SyncResponse struct {
	AutoSyncEnabled bool       `json:"autoSyncEnabled"`
	LastSyncTime    *time.Time `json:"lastSyncTime,omitempty"`
}

type GeocodeRequest struct {
	Address string `json:"address"`
}

type GeocodeResponse struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"displayName"`
}

type UntappdBrewery struct {
	Name          string   `json:"name"`
	Url           string   `json:"url"`
	Description   string   `json:"description,omitempty"`
	StreetAddress *string  `json:"streetAddress,omitempty"`
	Locality      string   `json:"locality"`
	Region        *string  `json:"region,omitempty"`
	ExternalId    *uint64  `json:"externalId,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}

type UntappdBeer struct {
	Name       string   `json:"name"`
	Style      string   `json:"style"`
	Abv        *float64 `json:"abv,omitempty"`
	Ibu        *uint64  `json:"ibu,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	ExternalId *uint64  `json:"externalId,omitempty"`
}

// FindUntappdBreweryRequest searches Untappd by name. With Key set the stored
// brewery's name is used and its beer list is scraped as well.
type FindUntappdBreweryRequest struct {
	Name string      `json:"name,omitempty"`
	Key  *BreweryKey `json:"key,omitempty"`
}

func (x *FindUntappdBreweryRequest) GetKey() *BreweryKey {
	if x != nil {
		return x.Key
	}

	return nil
}

type FindUntappdBreweryResponse struct {
	Breweries    []*UntappdBrewery `json:"breweries"`
	EffectiveUrl string            `json:"effectiveUrl,omitempty"`
	Beers        []*UntappdBeer    `json:"beers,omitempty"`
}
