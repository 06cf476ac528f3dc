package autosync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BreweryTracker/mocks"
	"droscher.com/BreweryTracker/pkg/autosync"
	"droscher.com/BreweryTracker/pkg/model"
	"droscher.com/BreweryTracker/pkg/repository"
	"droscher.com/BreweryTracker/pkg/tracker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type SyncerTestSuite struct {
	suite.Suite
	repo         *mocks.CollectionRepository
	store        *tracker.Store
	syncer       *autosync.Syncer
	observedLogs *observer.ObservedLogs
	now          time.Time
}

func TestSyncerTestSuite(t *testing.T) {
	suite.Run(t, new(SyncerTestSuite))
}

func (suite *SyncerTestSuite) SetupTest() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	logger := zap.New(observedZapCore)

	suite.now = time.Date(2026, time.March, 14, 10, 15, 0, 0, time.UTC)
	suite.repo = mocks.NewCollectionRepository(suite.T())
	suite.store = tracker.NewStore(logger, tracker.WithRaters("K", "J", "D"))
	suite.store.Replace([]*model.Brewery{
		{Name: "Sapwood Cellars", Rank: 1, City: "Columbia", State: "MD", Lat: 39.2098, Lng: -76.8712},
		{Name: "Union Craft Brewing", Rank: 2, City: "Baltimore", State: "MD", Lat: 39.3313, Lng: -76.6333},
	})
	suite.syncer = autosync.New(suite.store, suite.repo, logger, autosync.WithClock(func() time.Time { return suite.now }))
}

func (suite *SyncerTestSuite) TearDownTest() {
	suite.syncer.Close()
}

func (suite *SyncerTestSuite) TestStoreChangesMarkDirty() {
	suite.False(suite.syncer.Dirty())

	_, err := suite.store.SetVisited(model.Key{Name: "Sapwood Cellars", City: "Columbia"}, true)

	suite.Require().NoError(err)
	suite.True(suite.syncer.Dirty())
}

func (suite *SyncerTestSuite) TestSync() {
	ctx := context.Background()

	_, err := suite.store.Rate(model.Key{Name: "Sapwood Cellars", City: "Columbia"}, "K", 5)
	suite.Require().NoError(err)

	suite.repo.EXPECT().SaveBreweries(ctx, mock.MatchedBy(func(breweries []*model.Brewery) bool {
		return len(breweries) == 2 && breweries[0].Ratings["K"] == 5
	})).Return(nil).Once()
	suite.repo.EXPECT().LoadSyncSettings(ctx).Return(&model.SyncSettings{AutoSyncEnabled: true}, nil).Once()
	suite.repo.EXPECT().SaveSyncSettings(ctx, model.SyncSettings{AutoSyncEnabled: true, LastSyncTime: &suite.now}).Return(nil).Once()

	settings, err := suite.syncer.Sync(ctx)

	suite.Require().NoError(err)
	suite.Equal(suite.now, *settings.LastSyncTime)
	suite.False(suite.syncer.Dirty())
	suite.Equal(1, suite.observedLogs.FilterMessage("synchronized breweries").Len())
}

func (suite *SyncerTestSuite) TestSync_FirstTimeUsesDefaults() {
	ctx := context.Background()

	suite.repo.EXPECT().SaveBreweries(ctx, mock.Anything).Return(nil).Once()
	suite.repo.EXPECT().LoadSyncSettings(ctx).Return(nil, repository.ErrValueNotFound).Once()
	suite.repo.EXPECT().SaveSyncSettings(ctx, model.SyncSettings{AutoSyncEnabled: true, LastSyncTime: &suite.now}).Return(nil).Once()

	settings, err := suite.syncer.Sync(ctx)

	suite.Require().NoError(err)
	suite.True(settings.AutoSyncEnabled)
}

func (suite *SyncerTestSuite) TestSync_SaveFailureKeepsDirty() {
	ctx := context.Background()
	saveErr := errors.New("disk full")

	_, err := suite.store.ToggleVisited(model.Key{Name: "Union Craft Brewing", City: "Baltimore"})
	suite.Require().NoError(err)

	suite.repo.EXPECT().SaveBreweries(ctx, mock.Anything).Return(saveErr).Once()

	_, err = suite.syncer.Sync(ctx)

	suite.Require().ErrorIs(err, saveErr)
	suite.True(suite.syncer.Dirty())
	suite.Equal(1, suite.observedLogs.FilterMessage("error saving breweries").Len())
}

func (suite *SyncerTestSuite) TestSave_LeavesSyncTimeAlone() {
	ctx := context.Background()

	_, err := suite.store.ToggleVisited(model.Key{Name: "Union Craft Brewing", City: "Baltimore"})
	suite.Require().NoError(err)

	suite.repo.EXPECT().SaveBreweries(ctx, mock.MatchedBy(func(breweries []*model.Brewery) bool {
		return len(breweries) == 2 && breweries[1].Visited
	})).Return(nil).Once()

	suite.Require().NoError(suite.syncer.Save(ctx))
	suite.False(suite.syncer.Dirty())
	suite.repo.AssertNotCalled(suite.T(), "SaveSyncSettings", mock.Anything, mock.Anything)
}

func (suite *SyncerTestSuite) TestSetAutoSync() {
	ctx := context.Background()

	suite.repo.EXPECT().LoadSyncSettings(ctx).Return(&model.SyncSettings{AutoSyncEnabled: true}, nil).Once()
	suite.repo.EXPECT().SaveSyncSettings(ctx, model.SyncSettings{AutoSyncEnabled: false}).Return(nil).Once()

	settings, err := suite.syncer.SetAutoSync(ctx, false)

	suite.Require().NoError(err)
	suite.False(settings.AutoSyncEnabled)
	suite.False(suite.syncer.Enabled())
}

func (suite *SyncerTestSuite) TestLoadSettings_AppliesToggle() {
	ctx := context.Background()

	suite.repo.EXPECT().LoadSyncSettings(ctx).Return(&model.SyncSettings{AutoSyncEnabled: false}, nil).Once()

	_, err := suite.syncer.LoadSettings(ctx)

	suite.Require().NoError(err)
	suite.False(suite.syncer.Enabled())
}

func (suite *SyncerTestSuite) TestStart_SyncsChangesOnTick() {
	saved := make(chan struct{}, 1)

	suite.repo.EXPECT().SaveBreweries(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, []*model.Brewery) error {
		saved <- struct{}{}

		return nil
	}).Once()
	suite.repo.EXPECT().LoadSyncSettings(mock.Anything).Return(&model.SyncSettings{AutoSyncEnabled: true}, nil).Once()
	suite.repo.EXPECT().SaveSyncSettings(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.store.SetVisited(model.Key{Name: "Sapwood Cellars", City: "Columbia"}, true)
	suite.Require().NoError(err)

	stop := suite.syncer.Start(context.Background(), 5*time.Millisecond)

	select {
	case <-saved:
	case <-time.After(time.Second):
		suite.Fail("collection was not synced")
	}

	stop()
	suite.False(suite.syncer.Dirty())
}

func (suite *SyncerTestSuite) TestStart_SkipsWhenClean() {
	stop := suite.syncer.Start(context.Background(), time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	stop()

	suite.repo.AssertNotCalled(suite.T(), "SaveBreweries", mock.Anything, mock.Anything)
}

func (suite *SyncerTestSuite) TestStart_FlushesOnStop() {
	suite.repo.EXPECT().SaveBreweries(mock.Anything, mock.Anything).Return(nil).Once()
	suite.repo.EXPECT().LoadSyncSettings(mock.Anything).Return(&model.SyncSettings{AutoSyncEnabled: false}, nil).Twice()
	suite.repo.EXPECT().SaveSyncSettings(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.syncer.LoadSettings(context.Background())
	suite.Require().NoError(err)
	suite.store.SortByRank()

	stop := suite.syncer.Start(context.Background(), time.Hour)
	stop()

	suite.False(suite.syncer.Dirty())
}
