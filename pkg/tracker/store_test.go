package tracker_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BreweryTracker/pkg/model"
	"droscher.com/BreweryTracker/pkg/tracker"
)

type StoreTestSuite struct {
	suite.Suite
	store        *tracker.Store
	events       []tracker.Event
	observedLogs *observer.ObservedLogs
	now          time.Time
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) SetupTest() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.now = today
	suite.events = nil

	suite.store = tracker.NewStore(zap.New(observedZapCore),
		tracker.WithRaters(testRaters...),
		tracker.WithClock(func() time.Time { return suite.now }))

	suite.store.Replace([]*model.Brewery{
		{Name: "A", City: "X", State: "MD", Rank: 2, Lat: 39.0, Lng: -77.0},
		{Name: "B", City: "Y", State: "PA", Rank: 1, Lat: 40.0, Lng: -77.0},
	})

	suite.store.Subscribe(func(event tracker.Event) {
		suite.events = append(suite.events, event)
	})
}

func (suite *StoreTestSuite) TestReplace_NormalisesRecords() {
	breweries := suite.store.Breweries()

	suite.Require().Len(breweries, 2)
	suite.Equal(model.Ratings{"K": 0, "J": 0, "D": 0}, breweries[0].Ratings)
	suite.NotEmpty(breweries[0].ID)
	suite.NotEqual(breweries[0].ID, breweries[1].ID)
}

func (suite *StoreTestSuite) TestReplace_CopiesRecords() {
	original := &model.Brewery{Name: "C", City: "Z", State: "VA", Lat: 37.5, Lng: -77.4}

	suite.store.Replace([]*model.Brewery{original})

	original.Notes = "changed after replace"
	original.Visited = true

	stored, err := suite.store.Get(model.Key{Name: "C", City: "Z"})
	suite.Require().NoError(err)
	suite.Empty(stored.Notes)
	suite.False(stored.Visited)
	suite.Nil(original.Ratings)
}

func (suite *StoreTestSuite) TestRate_NotifiesAndToggles() {
	key := model.Key{Name: "A", City: "X"}

	brewery, err := suite.store.Rate(key, "K", 4)
	suite.Require().NoError(err)
	suite.InDelta(4.0, brewery.AvgRating, 0.0001)

	brewery, err = suite.store.Rate(key, "K", 4)
	suite.Require().NoError(err)
	suite.Zero(brewery.AvgRating)

	suite.Equal([]tracker.Event{
		{Kind: tracker.EventUpdated, Key: key},
		{Kind: tracker.EventUpdated, Key: key},
	}, suite.events)
}

func (suite *StoreTestSuite) TestRate_FailureLeavesRecordUntouched() {
	key := model.Key{Name: "A", City: "X"}

	_, err := suite.store.Rate(key, "nobody", 4)
	suite.Require().ErrorIs(err, tracker.ErrUnknownRater)

	brewery, err := suite.store.Get(key)
	suite.Require().NoError(err)
	suite.Zero(brewery.AvgRating)
	suite.Empty(suite.events)
}

func (suite *StoreTestSuite) TestRate_UnknownBrewery() {
	_, err := suite.store.Rate(model.Key{Name: "A", City: "Nowhere"}, "K", 4)

	suite.Require().ErrorIs(err, tracker.ErrBreweryNotFound)
	suite.Require().ErrorContains(err, "A (Nowhere)")
}

func (suite *StoreTestSuite) TestSetVisited_KeepsFirstDate() {
	key := model.Key{Name: "B", City: "Y"}

	brewery, err := suite.store.SetVisited(key, true)
	suite.Require().NoError(err)
	suite.Equal("2026-03-14", *brewery.VisitDate)

	suite.now = today.AddDate(0, 1, 0)

	brewery, err = suite.store.SetVisited(key, true)
	suite.Require().NoError(err)
	suite.Equal("2026-03-14", *brewery.VisitDate)

	brewery, err = suite.store.SetVisited(key, false)
	suite.Require().NoError(err)
	suite.False(brewery.Visited)
	suite.Equal("2026-03-14", *brewery.VisitDate)
}

func (suite *StoreTestSuite) TestSetVisited_ClearDateOnUnvisit() {
	store := tracker.NewStore(zap.NewNop(), tracker.WithRaters(testRaters...), tracker.WithClearDateOnUnvisit(true))
	store.Replace([]*model.Brewery{{Name: "A", City: "X", Visited: true, VisitDate: pointy.String("2024-01-01")}})

	brewery, err := store.SetVisited(model.Key{Name: "A", City: "X"}, false)

	suite.Require().NoError(err)
	suite.Nil(brewery.VisitDate)
}

func (suite *StoreTestSuite) TestToggleVisited() {
	key := model.Key{Name: "A", City: "X"}

	brewery, err := suite.store.ToggleVisited(key)
	suite.Require().NoError(err)
	suite.True(brewery.Visited)
	suite.Equal("2026-03-14", *brewery.VisitDate)

	brewery, err = suite.store.ToggleVisited(key)
	suite.Require().NoError(err)
	suite.False(brewery.Visited)
}

func (suite *StoreTestSuite) TestUpsert_KeepsIDOfReplacedRecord() {
	before, err := suite.store.Get(model.Key{Name: "A", City: "X"})
	suite.Require().NoError(err)

	updated, err := suite.store.Upsert(model.Brewery{Name: "A", City: "X", Notes: "updated"})
	suite.Require().NoError(err)

	suite.Equal(before.ID, updated.ID)
	suite.Equal(2, suite.store.Len())
	suite.Equal([]tracker.Event{{Kind: tracker.EventUpdated, Key: updated.Key()}}, suite.events)

	added, err := suite.store.Upsert(model.Brewery{Name: "C", City: "Z"})
	suite.Require().NoError(err)
	suite.Equal(3, suite.store.Len())
	suite.Equal(tracker.EventAdded, suite.events[1].Kind)
	suite.Equal(added.Key(), suite.events[1].Key)
}

func (suite *StoreTestSuite) TestUpsert_RejectsInvalidRecords() {
	invalid := []model.Brewery{
		{Name: "A", City: "X", Ratings: model.Ratings{"Z": 3}},
		{Name: "A", City: "X", Ratings: model.Ratings{"K": 6}},
		{Name: "A", City: "X", Visited: true, VisitDate: pointy.String("14/03/2026")},
		{Name: " ", City: "X"},
	}

	for _, brewery := range invalid {
		_, err := suite.store.Upsert(brewery)

		var formatErr *tracker.FormatError

		suite.Require().ErrorAs(err, &formatErr, brewery.Name)
	}

	stored, err := suite.store.Get(model.Key{Name: "A", City: "X"})
	suite.Require().NoError(err)
	suite.Equal(model.Ratings{"K": 0, "J": 0, "D": 0}, stored.Ratings)
	suite.Nil(stored.VisitDate)
	suite.Empty(suite.events)
}

func (suite *StoreTestSuite) TestAddNew_LogsAndNotifies() {
	draft := validDraft()

	brewery, err := suite.store.AddNew(draft)
	suite.Require().NoError(err)

	suite.Equal(3, brewery.Rank)
	suite.Equal(3, suite.store.Len())
	suite.Equal([]tracker.Event{{Kind: tracker.EventAdded, Key: brewery.Key()}}, suite.events)

	logs := suite.observedLogs.FilterMessage("added brewery").All()
	suite.Require().Len(logs, 1)
	suite.Equal("Homebrew Shed", logs[0].ContextMap()["name"])
}

func (suite *StoreTestSuite) TestAddNew_ValidationErrorIsNotInserted() {
	draft := validDraft()
	draft.Lng = nil

	_, err := suite.store.AddNew(draft)

	suite.Require().EqualError(err, "validation failed: valid coordinates are required")
	suite.Equal(2, suite.store.Len())
	suite.Empty(suite.events)
}

func (suite *StoreTestSuite) TestImport_InvalidDataLeavesCollection() {
	before := suite.store.Breweries()

	err := suite.store.Import([]byte(`[{"name":"only"}]`))

	var formatErr *tracker.FormatError

	suite.Require().ErrorAs(err, &formatErr)
	suite.Empty(cmp.Diff(before, suite.store.Breweries()))
	suite.Empty(suite.events)
	suite.Equal(1, suite.observedLogs.FilterMessage("rejected brewery import").Len())
}

func (suite *StoreTestSuite) TestExportImport_RoundTrip() {
	_, err := suite.store.Rate(model.Key{Name: "A", City: "X"}, "J", 3)
	suite.Require().NoError(err)

	before := suite.store.Breweries()

	var buffer bytes.Buffer
	suite.Require().NoError(suite.store.Export(&buffer))
	suite.Require().NoError(suite.store.Import(buffer.Bytes()))

	suite.Empty(cmp.Diff(before, suite.store.Breweries()))
	suite.Equal(tracker.EventReplaced, suite.events[len(suite.events)-1].Kind)
}

func (suite *StoreTestSuite) TestSnapshotsAreIsolated() {
	breweries := suite.store.Breweries()
	breweries[0].Ratings["K"] = 5
	breweries[0].Name = "mutated"

	brewery, err := suite.store.Get(model.Key{Name: "A", City: "X"})
	suite.Require().NoError(err)
	suite.Zero(brewery.Ratings["K"])
}

func (suite *StoreTestSuite) TestSortByDistanceAndRank() {
	suite.Require().NoError(suite.store.SortByDistanceFrom(40.0, -77.0))

	breweries := suite.store.Breweries()
	suite.Equal("B", breweries[0].Name)
	suite.InDelta(0.0, *breweries[0].Distance, 0.0001)
	suite.InDelta(111.0, *breweries[1].Distance, 0.0001)

	suite.store.SortByRank()
	suite.Equal("B", suite.store.Breweries()[0].Name)

	suite.Require().NoError(suite.store.SortByDistanceFrom(39.0, -77.0))
	suite.Equal("A", suite.store.Breweries()[0].Name)
	suite.store.SortByRank()
	suite.Equal("B", suite.store.Breweries()[0].Name)

	suite.Len(suite.events, 4)
}

func (suite *StoreTestSuite) TestFilterAndStats() {
	_, err := suite.store.SetVisited(model.Key{Name: "A", City: "X"}, true)
	suite.Require().NoError(err)

	visited := suite.store.Filter(tracker.Criteria{VisitedStatus: tracker.VisitedOnly})
	suite.Require().Len(visited, 1)
	suite.Equal("A", visited[0].Name)

	stats := suite.store.Stats()
	suite.Equal(1, stats.VisitedCount)
	suite.InDelta(50.0, stats.VisitedPercentage, 0.0001)
	suite.Require().Len(stats.RecentVisits, 1)
	suite.Equal("A", stats.RecentVisits[0].Name)
}

func (suite *StoreTestSuite) TestUnsubscribe() {
	var count int

	unsubscribe := suite.store.Subscribe(func(tracker.Event) { count++ })

	suite.store.SortByRank()
	unsubscribe()
	suite.store.SortByRank()

	suite.Equal(1, count)
}
