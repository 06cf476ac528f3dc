package server

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/BreweryTracker/pkg/auth"
	"droscher.com/BreweryTracker/pkg/autosync"
	"droscher.com/BreweryTracker/pkg/integrations"
	"droscher.com/BreweryTracker/pkg/model"
	"droscher.com/BreweryTracker/pkg/server/grpc"
	api "droscher.com/BreweryTracker/pkg/server/grpc/api/v1"
	"droscher.com/BreweryTracker/pkg/server/grpc/api/v1/apiv1connect"
	"droscher.com/BreweryTracker/pkg/tracker"
)

type BreweryServer struct {
	apiv1connect.UnimplementedBreweryServiceHandler
	store    *tracker.Store
	syncer   *autosync.Syncer
	finder   integrations.BreweryFinder
	geocoder integrations.Geocoder
	logger   *zap.Logger
}

// NewBreweryServer serves the collection held by store. finder and geocoder
// may be nil, which disables the procedures that need them.
func NewBreweryServer(store *tracker.Store, syncer *autosync.Syncer,
	finder integrations.BreweryFinder, geocoder integrations.Geocoder, logger *zap.Logger,
) *BreweryServer {
	return &BreweryServer{store: store, syncer: syncer, finder: finder, geocoder: geocoder, logger: logger}
}

func (b *BreweryServer) ListBreweries(_ context.Context, request *connect.Request[api.ListBreweriesRequest]) (*connect.Response[api.ListBreweriesResponse], error) {
	switch request.Msg.Sort {
	case "":
	case api.SortRank:
		b.store.SortByRank()
	case api.SortDistance:
		if request.Msg.Lat == nil || request.Msg.Lng == nil {
			return nil, b.toConnectError("ListBreweries", ErrMissingCoordinate)
		}

		if err := b.store.SortByDistanceFrom(*request.Msg.Lat, *request.Msg.Lng); err != nil {
			return nil, b.toConnectError("ListBreweries", err)
		}
	default:
		return nil, b.toConnectError("ListBreweries", fmt.Errorf("%w: unknown sort %q", ErrInvalidInput, request.Msg.Sort))
	}

	breweries := b.store.Filter(grpc.CriteriaToModel(request.Msg.GetCriteria()))

	return connect.NewResponse(&api.ListBreweriesResponse{Breweries: grpc.BreweriesFromModel(breweries, b.finder)}), nil
}

func (b *BreweryServer) GetBrewery(_ context.Context, request *connect.Request[api.GetBreweryRequest]) (*connect.Response[api.GetBreweryResponse], error) {
	brewery, err := b.lookup(request.Msg.Id, request.Msg.GetKey())
	if err != nil {
		return nil, b.toConnectError("GetBrewery", err)
	}

	return connect.NewResponse(&api.GetBreweryResponse{Brewery: grpc.BreweryFromModel(brewery, b.finder)}), nil
}

func (b *BreweryServer) GetStats(_ context.Context, _ *connect.Request[api.GetStatsRequest]) (*connect.Response[api.GetStatsResponse], error) {
	return connect.NewResponse(&api.GetStatsResponse{Stats: grpc.StatsFromModel(b.store.Stats(), b.finder)}), nil
}

// SetRating uses the rater named in the caller's token when the request leaves it empty.
func (b *BreweryServer) SetRating(ctx context.Context, request *connect.Request[api.SetRatingRequest]) (*connect.Response[api.SetRatingResponse], error) {
	rater := request.Msg.Rater
	if len(rater) == 0 {
		if principal, ok := auth.FromContext(ctx); ok {
			rater = principal.Rater
		}
	}

	brewery, err := b.store.Rate(grpc.KeyToModel(request.Msg.GetKey()), rater, int(request.Msg.Rating))
	if err != nil {
		return nil, b.toConnectError("SetRating", err)
	}

	b.persist(ctx)

	return connect.NewResponse(&api.SetRatingResponse{Brewery: grpc.BreweryFromModel(brewery, b.finder)}), nil
}

func (b *BreweryServer) SetVisited(ctx context.Context, request *connect.Request[api.SetVisitedRequest]) (*connect.Response[api.SetVisitedResponse], error) {
	brewery, err := b.store.SetVisited(grpc.KeyToModel(request.Msg.GetKey()), request.Msg.Visited)
	if err != nil {
		return nil, b.toConnectError("SetVisited", err)
	}

	b.persist(ctx)

	return connect.NewResponse(&api.SetVisitedResponse{Brewery: grpc.BreweryFromModel(brewery, b.finder)}), nil
}

func (b *BreweryServer) ToggleVisited(ctx context.Context, request *connect.Request[api.ToggleVisitedRequest]) (*connect.Response[api.ToggleVisitedResponse], error) {
	brewery, err := b.store.ToggleVisited(grpc.KeyToModel(request.Msg.GetKey()))
	if err != nil {
		return nil, b.toConnectError("ToggleVisited", err)
	}

	b.persist(ctx)

	return connect.NewResponse(&api.ToggleVisitedResponse{Brewery: grpc.BreweryFromModel(brewery, b.finder)}), nil
}

func (b *BreweryServer) UpdateDetails(ctx context.Context, request *connect.Request[api.UpdateDetailsRequest]) (*connect.Response[api.UpdateDetailsResponse], error) {
	key := grpc.KeyToModel(request.Msg.GetKey())
	details := grpc.DetailsToModel(request.Msg)

	if request.Msg.FixUntappdUrl && b.finder != nil {
		current, err := b.store.Get(key)
		if err != nil {
			return nil, b.toConnectError("UpdateDetails", err)
		}

		details.UntappdURL = b.finder.FixURL(details.UntappdURL, current)
	}

	brewery, err := b.store.UpdateDetails(key, details)
	if err != nil {
		return nil, b.toConnectError("UpdateDetails", err)
	}

	b.persist(ctx)

	return connect.NewResponse(&api.UpdateDetailsResponse{Brewery: grpc.BreweryFromModel(brewery, b.finder)}), nil
}

func (b *BreweryServer) AddBrewery(ctx context.Context, request *connect.Request[api.AddBreweryRequest]) (*connect.Response[api.AddBreweryResponse], error) {
	draft := grpc.DraftToModel(request.Msg)

	if request.Msg.Geocode && (draft.Lat == nil || draft.Lng == nil) && len(strings.TrimSpace(draft.Address)) > 0 && b.geocoder != nil {
		location, err := b.geocoder.Geocode(ctx, draft.Address)
		if err != nil {
			b.logger.Warn("could not geocode new brewery", zap.String("address", draft.Address), zap.Error(err))
		} else {
			draft.Lat = &location.Lat
			draft.Lng = &location.Lng
		}
	}

	brewery, err := b.store.AddNew(draft)
	if err != nil {
		return nil, b.toConnectError("AddBrewery", err)
	}

	b.persist(ctx)

	return connect.NewResponse(&api.AddBreweryResponse{Brewery: grpc.BreweryFromModel(brewery, b.finder)}), nil
}

func (b *BreweryServer) ImportCollection(ctx context.Context, request *connect.Request[api.ImportCollectionRequest]) (*connect.Response[api.ImportCollectionResponse], error) {
	if err := b.store.Import([]byte(request.Msg.Data)); err != nil {
		return nil, b.toConnectError("ImportCollection", err)
	}

	b.persist(ctx)

	return connect.NewResponse(&api.ImportCollectionResponse{Count: int32(b.store.Len())}), nil //nolint:gosec // collection sizes are small
}

func (b *BreweryServer) ExportCollection(_ context.Context, _ *connect.Request[api.ExportCollectionRequest]) (*connect.Response[api.ExportCollectionResponse], error) {
	var buffer bytes.Buffer

	if err := b.store.Export(&buffer); err != nil {
		return nil, b.toConnectError("ExportCollection", err)
	}

	return connect.NewResponse(&api.ExportCollectionResponse{Data: buffer.String()}), nil
}

func (b *BreweryServer) Sync(ctx context.Context, request *connect.Request[api.SyncRequest]) (*connect.Response[api.SyncResponse], error) {
	if request.Msg.AutoSyncEnabled != nil {
		if _, err := b.syncer.SetAutoSync(ctx, *request.Msg.AutoSyncEnabled); err != nil {
			return nil, b.toConnectError("Sync", err)
		}
	}

	settings, err := b.syncer.Sync(ctx)
	if err != nil {
		return nil, b.toConnectError("Sync", err)
	}

	return connect.NewResponse(&api.SyncResponse{AutoSyncEnabled: settings.AutoSyncEnabled, LastSyncTime: settings.LastSyncTime}), nil
}

func (b *BreweryServer) Geocode(ctx context.Context, request *connect.Request[api.GeocodeRequest]) (*connect.Response[api.GeocodeResponse], error) {
	if b.geocoder == nil {
		return nil, b.toConnectError("Geocode", ErrNotConfigured)
	}

	location, err := b.geocoder.Geocode(ctx, request.Msg.Address)
	if err != nil {
		return nil, b.toConnectError("Geocode", err)
	}

	return connect.NewResponse(&api.GeocodeResponse{Lat: location.Lat, Lng: location.Lng, DisplayName: location.DisplayName}), nil
}

func (b *BreweryServer) FindUntappdBrewery(ctx context.Context, request *connect.Request[api.FindUntappdBreweryRequest]) (*connect.Response[api.FindUntappdBreweryResponse], error) {
	if b.finder == nil {
		return nil, b.toConnectError("FindUntappdBrewery", ErrNotConfigured)
	}

	response := api.FindUntappdBreweryResponse{}
	name := strings.TrimSpace(request.Msg.Name)

	if request.Msg.GetKey() != nil {
		brewery, err := b.store.Get(grpc.KeyToModel(request.Msg.GetKey()))
		if err != nil {
			return nil, b.toConnectError("FindUntappdBrewery", err)
		}

		name = brewery.Name
		response.EffectiveUrl = b.finder.EffectiveURL(brewery)

		beers, err := b.finder.FindBeers(ctx, response.EffectiveUrl)
		if err != nil {
			b.logger.Warn("failed to scrape beer list", zap.String("url", response.EffectiveUrl), zap.Error(err))
		}

		response.Beers = grpc.UntappdBeersFromModel(beers)
	}

	if len(name) == 0 {
		return nil, b.toConnectError("FindUntappdBrewery", fmt.Errorf("%w: name or key is required", ErrInvalidInput))
	}

	breweries, err := b.finder.FindBrewery(ctx, name)
	if err != nil {
		b.logger.Error("failed brewery search", zap.String("name", name), zap.Error(err))

		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	response.Breweries = grpc.UntappdBreweriesFromModel(breweries)

	return connect.NewResponse(&response), nil
}

func (b *BreweryServer) lookup(id string, key *api.BreweryKey) (*model.Brewery, error) {
	if len(id) > 0 {
		return b.store.GetByID(id)
	}

	if key == nil {
		return nil, fmt.Errorf("%w: id or key is required", ErrInvalidInput)
	}

	return b.store.Get(grpc.KeyToModel(key))
}

// persist saves the collection after a mutation. The syncer logs a failure
// and keeps the collection dirty for the next sync.
func (b *BreweryServer) persist(ctx context.Context) {
	_ = b.syncer.Save(ctx)
}
