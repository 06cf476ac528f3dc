package tracker

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"droscher.com/BreweryTracker/pkg/model"
)

type EventKind string

const (
	EventAdded     EventKind = "added"
	EventUpdated   EventKind = "updated"
	EventReplaced  EventKind = "replaced"
	EventReordered EventKind = "reordered"
)

// Event tells listeners which part of the collection changed. Key is empty
// for collection-wide events.
type Event struct {
	Kind EventKind
	Key  model.Key
}

type Listener func(Event)

// Store owns the working brewery collection. Views render from its snapshots
// and re-sync when notified of a change.
type Store struct {
	mu                 sync.RWMutex
	breweries          []*model.Brewery
	raters             []string
	clearDateOnUnvisit bool
	now                func() time.Time
	listeners          map[int]Listener
	nextListener       int
	logger             *zap.Logger
}

type Option func(*Store)

func WithRaters(raters ...string) Option {
	return func(s *Store) {
		s.raters = slices.Clone(raters)
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithClearDateOnUnvisit(clear bool) Option {
	return func(s *Store) {
		s.clearDateOnUnvisit = clear
	}
}

func NewStore(logger *zap.Logger, opts ...Option) *Store {
	store := &Store{
		raters:    slices.Clone(DefaultRaters),
		now:       time.Now,
		listeners: make(map[int]Listener),
		logger:    logger,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) Raters() []string {
	return slices.Clone(s.raters)
}

// Subscribe registers a listener and returns the function that removes it.
func (s *Store) Subscribe(listener Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.listeners, id)
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.breweries)
}

// Breweries returns a copy of the collection in its current order.
func (s *Store) Breweries() []*model.Brewery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.breweries)
}

func (s *Store) Get(key model.Key) (*model.Brewery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := IndexOf(s.breweries, key)
	if index < 0 {
		return nil, notFound(key)
	}

	return s.breweries[index].Clone(), nil
}

func (s *Store) GetByID(id string) (*model.Brewery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, brewery := range s.breweries {
		if brewery.ID == id {
			return brewery.Clone(), nil
		}
	}

	return nil, fmt.Errorf("%w: id %s", ErrBreweryNotFound, id)
}

// Replace swaps the whole collection for copies of the given records.
// Callers validate the records first.
func (s *Store) Replace(breweries []*model.Brewery) {
	s.mu.Lock()

	s.breweries = make([]*model.Brewery, 0, len(breweries))
	for _, brewery := range breweries {
		record := brewery.Clone()
		Normalize(record, s.raters)
		s.breweries = append(s.breweries, record)
	}

	s.mu.Unlock()

	s.logger.Info("replaced brewery collection", zap.Int("count", len(breweries)))
	s.notify(Event{Kind: EventReplaced})
}

// Import decodes an exported collection and replaces the working one with it.
// The working collection is untouched when the data is invalid.
func (s *Store) Import(data []byte) error {
	breweries, err := Decode(data, s.raters)
	if err != nil {
		s.logger.Warn("rejected brewery import", zap.Error(err))

		return err
	}

	s.Replace(breweries)

	return nil
}

func (s *Store) Export(writer io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Export(writer, s.breweries)
}

// Upsert adds the brewery or replaces the one with the same name and city.
// It applies the same checks as an import.
func (s *Store) Upsert(brewery model.Brewery) (*model.Brewery, error) {
	record := brewery.Clone()

	if _, err := validateImported(importedBrewery{Brewery: *record, Lat: &record.Lat, Lng: &record.Lng}, s.raters); err != nil {
		return nil, &FormatError{Err: err}
	}

	s.mu.Lock()

	kind := EventAdded
	if index := IndexOf(s.breweries, record.Key()); index >= 0 {
		kind = EventUpdated

		if len(record.ID) == 0 {
			record.ID = s.breweries[index].ID
		}
	}

	Normalize(record, s.raters)

	s.breweries = Upsert(s.breweries, record)
	result := record.Clone()
	s.mu.Unlock()

	s.notify(Event{Kind: kind, Key: record.Key()})

	return result, nil
}

func (s *Store) AddNew(draft model.Draft) (*model.Brewery, error) {
	s.mu.Lock()

	breweries, brewery, err := AddNew(s.breweries, draft, s.raters, s.now())
	if err != nil {
		s.mu.Unlock()

		return nil, err
	}

	s.breweries = breweries
	result := brewery.Clone()
	s.mu.Unlock()

	s.logger.Info("added brewery", zap.String("name", brewery.Name), zap.String("city", brewery.City), zap.Int("rank", brewery.Rank))
	s.notify(Event{Kind: EventAdded, Key: brewery.Key()})

	return result, nil
}

func (s *Store) Rate(key model.Key, rater string, value int) (*model.Brewery, error) {
	return s.update(key, func(brewery *model.Brewery) error {
		return SetRating(brewery, s.raters, rater, value)
	})
}

func (s *Store) SetVisited(key model.Key, visited bool) (*model.Brewery, error) {
	return s.update(key, func(brewery *model.Brewery) error {
		s.setVisited(brewery, visited)

		return nil
	})
}

func (s *Store) ToggleVisited(key model.Key) (*model.Brewery, error) {
	return s.update(key, func(brewery *model.Brewery) error {
		s.setVisited(brewery, !brewery.Visited)

		return nil
	})
}

func (s *Store) UpdateDetails(key model.Key, details model.Details) (*model.Brewery, error) {
	return s.update(key, func(brewery *model.Brewery) error {
		return ApplyDetails(brewery, details, s.now())
	})
}

func (s *Store) Filter(criteria Criteria) []*model.Brewery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(Filter(s.breweries, criteria))
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ComputeStats(s.breweries)
	stats.TopRated = cloneAll(stats.TopRated)
	stats.RecentVisits = cloneAll(stats.RecentVisits)

	return stats
}

// SortByDistanceFrom computes distances from the reference point and orders
// the collection nearest first.
func (s *Store) SortByDistanceFrom(lat, lng float64) error {
	s.mu.Lock()
	ApplyDistances(s.breweries, lat, lng)
	err := SortByDistance(s.breweries)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	s.notify(Event{Kind: EventReordered})

	return nil
}

func (s *Store) SortByRank() {
	s.mu.Lock()
	SortByRank(s.breweries)
	s.mu.Unlock()

	s.notify(Event{Kind: EventReordered})
}

func (s *Store) setVisited(brewery *model.Brewery, visited bool) {
	SetVisited(brewery, visited, s.now())

	if !visited && s.clearDateOnUnvisit {
		brewery.VisitDate = nil
	}
}

// update applies a mutation to a copy of the brewery so a failed mutation
// leaves the collection as it was.
func (s *Store) update(key model.Key, mutate func(*model.Brewery) error) (*model.Brewery, error) {
	s.mu.Lock()

	index := IndexOf(s.breweries, key)
	if index < 0 {
		s.mu.Unlock()

		return nil, notFound(key)
	}

	brewery := s.breweries[index].Clone()
	if err := mutate(brewery); err != nil {
		s.mu.Unlock()

		return nil, err
	}

	s.breweries[index] = brewery
	result := brewery.Clone()
	s.mu.Unlock()

	s.logger.Debug("updated brewery", zap.String("name", key.Name), zap.String("city", key.City))
	s.notify(Event{Kind: EventUpdated, Key: key})

	return result, nil
}

func (s *Store) notify(event Event) {
	s.mu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))

	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

func cloneAll(breweries []*model.Brewery) []*model.Brewery {
	clones := make([]*model.Brewery, 0, len(breweries))
	for _, brewery := range breweries {
		clones = append(clones, brewery.Clone())
	}

	return clones
}
