package server

import (
	"errors"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/BreweryTracker/pkg/integrations/nominatim"
	"droscher.com/BreweryTracker/pkg/tracker"
)

var (
	ErrInvalidInput      = errors.New("bad request")
	ErrNotConfigured     = errors.New("integration not configured")
	ErrMissingCoordinate = errors.New("lat and lng are required to sort by distance")
)

// toConnectError maps domain errors onto RPC status codes. Anything not
// recognised is logged and reported as internal.
func (b *BreweryServer) toConnectError(operation string, err error) error {
	var (
		validationErr *tracker.ValidationError
		formatErr     *tracker.FormatError
	)

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &formatErr),
		errors.Is(err, tracker.ErrInvalidRating),
		errors.Is(err, tracker.ErrUnknownRater),
		errors.Is(err, tracker.ErrInvalidDate),
		errors.Is(err, nominatim.ErrEmptyAddress),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrMissingCoordinate):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, tracker.ErrBreweryNotFound),
		errors.Is(err, nominatim.ErrNoResults):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, tracker.ErrDuplicateBrewery):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, tracker.ErrDistanceUnknown):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, ErrNotConfigured):
		return connect.NewError(connect.CodeUnimplemented, err)
	default:
		b.logger.Error("request failed", zap.String("operation", operation), zap.Error(err))

		return connect.NewError(connect.CodeInternal, err)
	}
}
