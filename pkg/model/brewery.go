package model

import (
	"strings"
)

const DateLayout = "2006-01-02"

// Ratings maps a rater identifier to a score between 0 and 5, 0 meaning unrated.
type Ratings map[string]int

type Brewery struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Rank         int      `json:"rank"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Address      string   `json:"address"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Visited      bool     `json:"visited"`
	VisitDate    *string  `json:"visitDate"`
	Ratings      Ratings  `json:"ratings"`
	AvgRating    float64  `json:"avgRating"`
	Notes        string   `json:"notes"`
	UntappdURL   string   `json:"untappdURL"`
	FlagshipBeer string   `json:"flagshipBeer,omitempty"`
	Distance     *float64 `json:"distance,omitempty"`
	IsCustom     bool     `json:"isCustom,omitempty"`
}

// Key is the composite identity of a brewery within a collection.
type Key struct {
	Name string `json:"name"`
	City string `json:"city"`
}

func (b *Brewery) Key() Key {
	return Key{Name: b.Name, City: b.City}
}

func (b *Brewery) HasVisitDate() bool {
	return b.VisitDate != nil && len(*b.VisitDate) > 0
}

// FlagshipBeers splits the comma separated flagship beer list.
func (b *Brewery) FlagshipBeers() []string {
	if len(strings.TrimSpace(b.FlagshipBeer)) == 0 {
		return nil
	}

	parts := strings.Split(b.FlagshipBeer, ",")
	beers := make([]string, 0, len(parts))

	for _, part := range parts {
		if beer := strings.TrimSpace(part); len(beer) > 0 {
			beers = append(beers, beer)
		}
	}

	return beers
}

// Clone returns a deep copy so callers can't mutate collection state through it.
func (b *Brewery) Clone() *Brewery {
	clone := *b

	if b.VisitDate != nil {
		date := *b.VisitDate
		clone.VisitDate = &date
	}

	if b.Distance != nil {
		distance := *b.Distance
		clone.Distance = &distance
	}

	if b.Ratings != nil {
		clone.Ratings = make(Ratings, len(b.Ratings))
		for rater, value := range b.Ratings {
			clone.Ratings[rater] = value
		}
	}

	return &clone
}

// Draft carries the user input for a brewery that is being added by hand.
type Draft struct {
	Name         string   `json:"name"`
	Rank         *int     `json:"rank,omitempty"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Address      string   `json:"address"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	Visited      bool     `json:"visited"`
	VisitDate    *string  `json:"visitDate,omitempty"`
	Notes        string   `json:"notes"`
	FlagshipBeer string   `json:"flagshipBeer"`
}

// Details are the editable fields of the brewery details form.
type Details struct {
	Visited    bool    `json:"visited"`
	VisitDate  *string `json:"visitDate,omitempty"`
	Notes      string  `json:"notes"`
	UntappdURL string  `json:"untappdURL"`
}
