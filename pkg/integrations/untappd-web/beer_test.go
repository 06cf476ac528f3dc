package untappdweb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	. "droscher.com/BreweryTracker/pkg/integrations/untappd-web"
)

func TestFindBeers(t *testing.T) {
	server := newUntappdServer(t)
	untappd := NewUntappdWebIntegration(zaptest.NewLogger(t), WithBaseURL(server.URL))

	results, err := untappd.FindBeers(context.Background(), server.URL+"/FremontBrewing/")

	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Lush IPA", results[0].Name)
	assert.Equal(t, "IPA - American", results[0].Style)
	require.NotNil(t, results[0].ABV)
	assert.InDelta(t, 7.0, *results[0].ABV, 0.01)
	assert.Nil(t, results[0].IBU)
	require.NotNil(t, results[0].Rating)
	assert.InDelta(t, 3.912, *results[0].Rating, 0.001)
	require.NotNil(t, results[0].ExternalID)
	assert.Equal(t, uint64(110569), *results[0].ExternalID)

	assert.Equal(t, "Interurban IPA", results[1].Name)
	require.NotNil(t, results[1].IBU)
	assert.Equal(t, uint64(80), *results[1].IBU)
	assert.Nil(t, results[1].Rating)
}

func TestFindBeers_UnknownBrewery(t *testing.T) {
	server := newUntappdServer(t)
	untappd := NewUntappdWebIntegration(zaptest.NewLogger(t), WithBaseURL(server.URL))

	results, err := untappd.FindBeers(context.Background(), server.URL+"/NoSuchBrewery")

	require.Error(t, err)
	assert.Empty(t, results)
}
