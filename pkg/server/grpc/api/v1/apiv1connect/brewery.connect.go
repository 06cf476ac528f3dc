// Package apiv1connect wires the brewerytracker.v1 messages to connect-go
// handlers and clients.
package apiv1connect

import (
	context "context"
	errors "errors"
	http "net/http"
	strings "strings"

	connect_go "github.com/bufbuild/connect-go"

	v1 "droscher.com/BreweryTracker/pkg/server/grpc/api/v1"
)

// BreweryServiceName is the fully-qualified name of the BreweryService service.
const BreweryServiceName = "brewerytracker.v1.BreweryService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	// BreweryServiceListBreweriesProcedure is the fully-qualified name of the BreweryService's ListBreweries RPC.
	BreweryServiceListBreweriesProcedure      = "/brewerytracker.v1.BreweryService/ListBreweries"
	// BreweryServiceGetBreweryProcedure is the fully-qualified name of the BreweryService's GetBrewery RPC.
	BreweryServiceGetBreweryProcedure         = "/brewerytracker.v1.BreweryService/GetBrewery"
	// BreweryServiceGetStatsProcedure is the fully-qualified name of the BreweryService's GetStats RPC.
	BreweryServiceGetStatsProcedure           = "/brewerytracker.v1.BreweryService/GetStats"
	// BreweryServiceSetRatingProcedure is the fully-qualified name of the BreweryService's SetRating RPC.
	BreweryServiceSetRatingProcedure          = "/brewerytracker.v1.BreweryService/SetRating"
	// BreweryServiceSetVisitedProcedure is the fully-qualified name of the BreweryService's SetVisited RPC.
	BreweryServiceSetVisitedProcedure         = "/brewerytracker.v1.BreweryService/SetVisited"
	// BreweryServiceToggleVisitedProcedure is the fully-qualified name of the BreweryService's ToggleVisited RPC.
	BreweryServiceToggleVisitedProcedure      = "/brewerytracker.v1.BreweryService/ToggleVisited"
	// BreweryServiceUpdateDetailsProcedure is the fully-qualified name of the BreweryService's UpdateDetails RPC.
	BreweryServiceUpdateDetailsProcedure      = "/brewerytracker.v1.BreweryService/UpdateDetails"
	// BreweryServiceAddBreweryProcedure is the fully-qualified name of the BreweryService's AddBrewery RPC.
	BreweryServiceAddBreweryProcedure         = "/brewerytracker.v1.BreweryService/AddBrewery"
	// BreweryServiceImportCollectionProcedure is the fully-qualified name of the BreweryService's ImportCollection RPC.
	BreweryServiceImportCollectionProcedure   = "/brewerytracker.v1.BreweryService/ImportCollection"
	// BreweryServiceExportCollectionProcedure is the fully-qualified name of the BreweryService's ExportCollection RPC.
	BreweryServiceExportCollectionProcedure   = "/brewerytracker.v1.BreweryService/ExportCollection"
	// BreweryServiceSyncProcedure is the fully-qualified name of the BreweryService's Sync RPC.
	BreweryServiceSyncProcedure               = "/brewerytracker.v1.BreweryService/Sync"
	// BreweryServiceGeocodeProcedure is the fully-qualified name of the BreweryService's Geocode RPC.
	BreweryServiceGeocodeProcedure            = "/brewerytracker.v1.BreweryService/Geocode"
	// BreweryServiceFindUntappdBreweryProcedure is the fully-qualified name of the BreweryService's FindUntappdBrewery RPC.
	BreweryServiceFindUntappdBreweryProcedure = "/brewerytracker.v1.BreweryService/FindUntappdBrewery"
)

// BreweryServiceClient is a client for the brewerytracker.v1.BreweryService service.
type BreweryServiceClient interface {
	ListBreweries(context.Context, *connect_go.Request[v1.ListBreweriesRequest]) (*connect_go.Response[v1.ListBreweriesResponse], error)
	GetBrewery(context.Context, *connect_go.Request[v1.GetBreweryRequest]) (*connect_go.Response[v1.GetBreweryResponse], error)
	GetStats(context.Context, *connect_go.Request[v1.GetStatsRequest]) (*connect_go.Response[v1.GetStatsResponse], error)
	SetRating(context.Context, *connect_go.Request[v1.SetRatingRequest]) (*connect_go.Response[v1.SetRatingResponse], error)
	SetVisited(context.Context, *connect_go.Request[v1.SetVisitedRequest]) (*connect_go.Response[v1.SetVisitedResponse], error)
	ToggleVisited(context.Context, *connect_go.Request[v1.ToggleVisitedRequest]) (*connect_go.Response[v1.ToggleVisitedResponse], error)
	UpdateDetails(context.Context, *connect_go.Request[v1.UpdateDetailsRequest]) (*connect_go.Response[v1.UpdateDetailsResponse], error)
	AddBrewery(context.Context, *connect_go.Request[v1.AddBreweryRequest]) (*connect_go.Response[v1.AddBreweryResponse], error)
	ImportCollection(context.Context, *connect_go.Request[v1.ImportCollectionRequest]) (*connect_go.Response[v1.ImportCollectionResponse], error)
	ExportCollection(context.Context, *connect_go.Request[v1.ExportCollectionRequest]) (*connect_go.Response[v1.ExportCollectionResponse], error)
	Sync(context.Context, *connect_go.Request[v1.SyncRequest]) (*connect_go.Response[v1.SyncResponse], error)
	Geocode(context.Context, *connect_go.Request[v1.GeocodeRequest]) (*connect_go.Response[v1.GeocodeResponse], error)
	FindUntappdBrewery(context.Context, *connect_go.Request[v1.FindUntappdBreweryRequest]) (*connect_go.Response[v1.FindUntappdBreweryResponse], error)
}

// NewBreweryServiceClient constructs a client for the brewerytracker.v1.BreweryService service.
// Messages are sent as JSON unless another codec is passed in opts.
func NewBreweryServiceClient(httpClient connect_go.HTTPClient, baseURL string, opts ...connect_go.ClientOption) BreweryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect_go.ClientOption{connect_go.WithCodec(Codec{})}, opts...)

	return &breweryServiceClient{
		listBreweries: connect_go.NewClient[v1.ListBreweriesRequest, v1.ListBreweriesResponse](
			httpClient,
			baseURL+BreweryServiceListBreweriesProcedure,
			opts...,
		),
		getBrewery: connect_go.NewClient[v1.GetBreweryRequest, v1.GetBreweryResponse](
			httpClient,
			baseURL+BreweryServiceGetBreweryProcedure,
			opts...,
		),
		getStats: connect_go.NewClient[v1.GetStatsRequest, v1.GetStatsResponse](
			httpClient,
			baseURL+BreweryServiceGetStatsProcedure,
			opts...,
		),
		setRating: connect_go.NewClient[v1.SetRatingRequest, v1.SetRatingResponse](
			httpClient,
			baseURL+BreweryServiceSetRatingProcedure,
			opts...,
		),
		setVisited: connect_go.NewClient[v1.SetVisitedRequest, v1.SetVisitedResponse](
			httpClient,
			baseURL+BreweryServiceSetVisitedProcedure,
			opts...,
		),
		toggleVisited: connect_go.NewClient[v1.ToggleVisitedRequest, v1.ToggleVisitedResponse](
			httpClient,
			baseURL+BreweryServiceToggleVisitedProcedure,
			opts...,
		),
		updateDetails: connect_go.NewClient[v1.UpdateDetailsRequest, v1.UpdateDetailsResponse](
			httpClient,
			baseURL+BreweryServiceUpdateDetailsProcedure,
			opts...,
		),
		addBrewery: connect_go.NewClient[v1.AddBreweryRequest, v1.AddBreweryResponse](
			httpClient,
			baseURL+BreweryServiceAddBreweryProcedure,
			opts...,
		),
		importCollection: connect_go.NewClient[v1.ImportCollectionRequest, v1.ImportCollectionResponse](
			httpClient,
			baseURL+BreweryServiceImportCollectionProcedure,
			opts...,
		),
		exportCollection: connect_go.NewClient[v1.ExportCollectionRequest, v1.ExportCollectionResponse](
			httpClient,
			baseURL+BreweryServiceExportCollectionProcedure,
			opts...,
		),
		sync: connect_go.NewClient[v1.SyncRequest, v1.SyncResponse](
			httpClient,
			baseURL+BreweryServiceSyncProcedure,
			opts...,
		),
		geocode: connect_go.NewClient[v1.GeocodeRequest, v1.GeocodeResponse](
			httpClient,
			baseURL+BreweryServiceGeocodeProcedure,
			opts...,
		),
		findUntappdBrewery: connect_go.NewClient[v1.FindUntappdBreweryRequest, v1.FindUntappdBreweryResponse](
			httpClient,
			baseURL+BreweryServiceFindUntappdBreweryProcedure,
			opts...,
		),
	}
}

// breweryServiceClient implements BreweryServiceClient.
type breweryServiceClient struct {
	listBreweries      *connect_go.Client[v1.ListBreweriesRequest, v1.ListBreweriesResponse]
	getBrewery         *connect_go.Client[v1.GetBreweryRequest, v1.GetBreweryResponse]
	getStats           *connect_go.Client[v1.GetStatsRequest, v1.GetStatsResponse]
	setRating          *connect_go.Client[v1.SetRatingRequest, v1.SetRatingResponse]
	setVisited         *connect_go.Client[v1.SetVisitedRequest, v1.SetVisitedResponse]
	toggleVisited      *connect_go.Client[v1.ToggleVisitedRequest, v1.ToggleVisitedResponse]
	updateDetails      *connect_go.Client[v1.UpdateDetailsRequest, v1.UpdateDetailsResponse]
	addBrewery         *connect_go.Client[v1.AddBreweryRequest, v1.AddBreweryResponse]
	importCollection   *connect_go.Client[v1.ImportCollectionRequest, v1.ImportCollectionResponse]
	exportCollection   *connect_go.Client[v1.ExportCollectionRequest, v1.ExportCollectionResponse]
	sync               *connect_go.Client[v1.SyncRequest, v1.SyncResponse]
	geocode            *connect_go.Client[v1.GeocodeRequest, v1.GeocodeResponse]
	findUntappdBrewery *connect_go.Client[v1.FindUntappdBreweryRequest, v1.FindUntappdBreweryResponse]
}

// ListBreweries calls brewerytracker.v1.BreweryService.ListBreweries.
func (c *breweryServiceClient) ListBreweries(ctx context.Context, req *connect_go.Request[v1.ListBreweriesRequest]) (*connect_go.Response[v1.ListBreweriesResponse], error) {
	return c.listBreweries.CallUnary(ctx, req)
}

// GetBrewery calls brewerytracker.v1.BreweryService.GetBrewery.
func (c *breweryServiceClient) GetBrewery(ctx context.Context, req *connect_go.Request[v1.GetBreweryRequest]) (*connect_go.Response[v1.GetBreweryResponse], error) {
	return c.getBrewery.CallUnary(ctx, req)
}

// GetStats calls brewerytracker.v1.BreweryService.GetStats.
func (c *breweryServiceClient) GetStats(ctx context.Context, req *connect_go.Request[v1.GetStatsRequest]) (*connect_go.Response[v1.GetStatsResponse], error) {
	return c.getStats.CallUnary(ctx, req)
}

// SetRating calls brewerytracker.v1.BreweryService.SetRating.
func (c *breweryServiceClient) SetRating(ctx context.Context, req *connect_go.Request[v1.SetRatingRequest]) (*connect_go.Response[v1.SetRatingResponse], error) {
	return c.setRating.CallUnary(ctx, req)
}

// SetVisited calls brewerytracker.v1.BreweryService.SetVisited.
func (c *breweryServiceClient) SetVisited(ctx context.Context, req *connect_go.Request[v1.SetVisitedRequest]) (*connect_go.Response[v1.SetVisitedResponse], error) {
	return c.setVisited.CallUnary(ctx, req)
}

// ToggleVisited calls brewerytracker.v1.BreweryService.ToggleVisited.
func (c *breweryServiceClient) ToggleVisited(ctx context.Context, req *connect_go.Request[v1.ToggleVisitedRequest]) (*connect_go.Response[v1.ToggleVisitedResponse], error) {
	return c.toggleVisited.CallUnary(ctx, req)
}

// UpdateDetails calls brewerytracker.v1.BreweryService.UpdateDetails.
func (c *breweryServiceClient) UpdateDetails(ctx context.Context, req *connect_go.Request[v1.UpdateDetailsRequest]) (*connect_go.Response[v1.UpdateDetailsResponse], error) {
	return c.updateDetails.CallUnary(ctx, req)
}

// AddBrewery calls brewerytracker.v1.BreweryService.AddBrewery.
func (c *breweryServiceClient) AddBrewery(ctx context.Context, req *connect_go.Request[v1.AddBreweryRequest]) (*connect_go.Response[v1.AddBreweryResponse], error) {
	return c.addBrewery.CallUnary(ctx, req)
}

// ImportCollection calls brewerytracker.v1.BreweryService.ImportCollection.
func (c *breweryServiceClient) ImportCollection(ctx context.Context, req *connect_go.Request[v1.ImportCollectionRequest]) (*connect_go.Response[v1.ImportCollectionResponse], error) {
	return c.importCollection.CallUnary(ctx, req)
}

// ExportCollection calls brewerytracker.v1.BreweryService.ExportCollection.
func (c *breweryServiceClient) ExportCollection(ctx context.Context, req *connect_go.Request[v1.ExportCollectionRequest]) (*connect_go.Response[v1.ExportCollectionResponse], error) {
	return c.exportCollection.CallUnary(ctx, req)
}

// Sync calls brewerytracker.v1.BreweryService.Sync.
func (c *breweryServiceClient) Sync(ctx context.Context, req *connect_go.Request[v1.SyncRequest]) (*connect_go.Response[v1.SyncResponse], error) {
	return c.sync.CallUnary(ctx, req)
}

// Geocode calls brewerytracker.v1.BreweryService.Geocode.
func (c *breweryServiceClient) Geocode(ctx context.Context, req *connect_go.Request[v1.GeocodeRequest]) (*connect_go.Response[v1.GeocodeResponse], error) {
	return c.geocode.CallUnary(ctx, req)
}

// FindUntappdBrewery calls brewerytracker.v1.BreweryService.FindUntappdBrewery.
func (c *breweryServiceClient) FindUntappdBrewery(ctx context.Context, req *connect_go.Request[v1.FindUntappdBreweryRequest]) (*connect_go.Response[v1.FindUntappdBreweryResponse], error) {
	return c.findUntappdBrewery.CallUnary(ctx, req)
}

// BreweryServiceHandler is an implementation of the brewerytracker.v1.BreweryService service.
type BreweryServiceHandler interface {
	ListBreweries(context.Context, *connect_go.Request[v1.ListBreweriesRequest]) (*connect_go.Response[v1.ListBreweriesResponse], error)
	GetBrewery(context.Context, *connect_go.Request[v1.GetBreweryRequest]) (*connect_go.Response[v1.GetBreweryResponse], error)
	GetStats(context.Context, *connect_go.Request[v1.GetStatsRequest]) (*connect_go.Response[v1.GetStatsResponse], error)
	SetRating(context.Context, *connect_go.Request[v1.SetRatingRequest]) (*connect_go.Response[v1.SetRatingResponse], error)
	SetVisited(context.Context, *connect_go.Request[v1.SetVisitedRequest]) (*connect_go.Response[v1.SetVisitedResponse], error)
	ToggleVisited(context.Context, *connect_go.Request[v1.ToggleVisitedRequest]) (*connect_go.Response[v1.ToggleVisitedResponse], error)
	UpdateDetails(context.Context, *connect_go.Request[v1.UpdateDetailsRequest]) (*connect_go.Response[v1.UpdateDetailsResponse], error)
	AddBrewery(context.Context, *connect_go.Request[v1.AddBreweryRequest]) (*connect_go.Response[v1.AddBreweryResponse], error)
	ImportCollection(context.Context, *connect_go.Request[v1.ImportCollectionRequest]) (*connect_go.Response[v1.ImportCollectionResponse], error)
	ExportCollection(context.Context, *connect_go.Request[v1.ExportCollectionRequest]) (*connect_go.Response[v1.ExportCollectionResponse], error)
	Sync(context.Context, *connect_go.Request[v1.SyncRequest]) (*connect_go.Response[v1.SyncResponse], error)
	Geocode(context.Context, *connect_go.Request[v1.GeocodeRequest]) (*connect_go.Response[v1.GeocodeResponse], error)
	FindUntappdBrewery(context.Context, *connect_go.Request[v1.FindUntappdBreweryRequest]) (*connect_go.Response[v1.FindUntappdBreweryResponse], error)
}

// NewBreweryServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewBreweryServiceHandler(svc BreweryServiceHandler, opts ...connect_go.HandlerOption) (string, http.Handler) {
	opts = append([]connect_go.HandlerOption{connect_go.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(BreweryServiceListBreweriesProcedure, connect_go.NewUnaryHandler(
		BreweryServiceListBreweriesProcedure,
		svc.ListBreweries,
		opts...,
	))
	mux.Handle(BreweryServiceGetBreweryProcedure, connect_go.NewUnaryHandler(
		BreweryServiceGetBreweryProcedure,
		svc.GetBrewery,
		opts...,
	))
	mux.Handle(BreweryServiceGetStatsProcedure, connect_go.NewUnaryHandler(
		BreweryServiceGetStatsProcedure,
		svc.GetStats,
		opts...,
	))
	mux.Handle(BreweryServiceSetRatingProcedure, connect_go.NewUnaryHandler(
		BreweryServiceSetRatingProcedure,
		svc.SetRating,
		opts...,
	))
	mux.Handle(BreweryServiceSetVisitedProcedure, connect_go.NewUnaryHandler(
		BreweryServiceSetVisitedProcedure,
		svc.SetVisited,
		opts...,
	))
	mux.Handle(BreweryServiceToggleVisitedProcedure, connect_go.NewUnaryHandler(
		BreweryServiceToggleVisitedProcedure,
		svc.ToggleVisited,
		opts...,
	))
	mux.Handle(BreweryServiceUpdateDetailsProcedure, connect_go.NewUnaryHandler(
		BreweryServiceUpdateDetailsProcedure,
		svc.UpdateDetails,
		opts...,
	))
	mux.Handle(BreweryServiceAddBreweryProcedure, connect_go.NewUnaryHandler(
		BreweryServiceAddBreweryProcedure,
		svc.AddBrewery,
		opts...,
	))
	mux.Handle(BreweryServiceImportCollectionProcedure, connect_go.NewUnaryHandler(
		BreweryServiceImportCollectionProcedure,
		svc.ImportCollection,
		opts...,
	))
	mux.Handle(BreweryServiceExportCollectionProcedure, connect_go.NewUnaryHandler(
		BreweryServiceExportCollectionProcedure,
		svc.ExportCollection,
		opts...,
	))
	mux.Handle(BreweryServiceSyncProcedure, connect_go.NewUnaryHandler(
		BreweryServiceSyncProcedure,
		svc.Sync,
		opts...,
	))
	mux.Handle(BreweryServiceGeocodeProcedure, connect_go.NewUnaryHandler(
		BreweryServiceGeocodeProcedure,
		svc.Geocode,
		opts...,
	))
	mux.Handle(BreweryServiceFindUntappdBreweryProcedure, connect_go.NewUnaryHandler(
		BreweryServiceFindUntappdBreweryProcedure,
		svc.FindUntappdBrewery,
		opts...,
	))

	return "/brewerytracker.v1.BreweryService/", mux
}

// UnimplementedBreweryServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedBreweryServiceHandler struct{}

func (UnimplementedBreweryServiceHandler) ListBreweries(context.Context, *connect_go.Request[v1.ListBreweriesRequest]) (*connect_go.Response[v1.ListBreweriesResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.ListBreweries is not implemented"))
}

func (UnimplementedBreweryServiceHandler) GetBrewery(context.Context, *connect_go.Request[v1.GetBreweryRequest]) (*connect_go.Response[v1.GetBreweryResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.GetBrewery is not implemented"))
}

func (UnimplementedBreweryServiceHandler) GetStats(context.Context, *connect_go.Request[v1.GetStatsRequest]) (*connect_go.Response[v1.GetStatsResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.GetStats is not implemented"))
}

func (UnimplementedBreweryServiceHandler) SetRating(context.Context, *connect_go.Request[v1.SetRatingRequest]) (*connect_go.Response[v1.SetRatingResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.SetRating is not implemented"))
}

func (UnimplementedBreweryServiceHandler) SetVisited(context.Context, *connect_go.Request[v1.SetVisitedRequest]) (*connect_go.Response[v1.SetVisitedResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.SetVisited is not implemented"))
}

func (UnimplementedBreweryServiceHandler) ToggleVisited(context.Context, *connect_go.Request[v1.ToggleVisitedRequest]) (*connect_go.Response[v1.ToggleVisitedResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.ToggleVisited is not implemented"))
}

func (UnimplementedBreweryServiceHandler) UpdateDetails(context.Context, *connect_go.Request[v1.UpdateDetailsRequest]) (*connect_go.Response[v1.UpdateDetailsResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.UpdateDetails is not implemented"))
}

func (UnimplementedBreweryServiceHandler) AddBrewery(context.Context, *connect_go.Request[v1.AddBreweryRequest]) (*connect_go.Response[v1.AddBreweryResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.AddBrewery is not implemented"))
}

func (UnimplementedBreweryServiceHandler) ImportCollection(context.Context, *connect_go.Request[v1.ImportCollectionRequest]) (*connect_go.Response[v1.ImportCollectionResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.ImportCollection is not implemented"))
}

func (UnimplementedBreweryServiceHandler) ExportCollection(context.Context, *connect_go.Request[v1.ExportCollectionRequest]) (*connect_go.Response[v1.ExportCollectionResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.ExportCollection is not implemented"))
}

func (UnimplementedBreweryServiceHandler) Sync(context.Context, *connect_go.Request[v1.SyncRequest]) (*connect_go.Response[v1.SyncResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.Sync is not implemented"))
}

func (UnimplementedBreweryServiceHandler) Geocode(context.Context, *connect_go.Request[v1.GeocodeRequest]) (*connect_go.Response[v1.GeocodeResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.Geocode is not implemented"))
}

func (UnimplementedBreweryServiceHandler) FindUntappdBrewery(context.Context, *connect_go.Request[v1.FindUntappdBreweryRequest]) (*connect_go.Response[v1.FindUntappdBreweryResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("brewerytracker.v1.BreweryService.FindUntappdBrewery is not implemented"))
}
