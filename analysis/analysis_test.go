package analysis

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/seokit/catalog"
	"github.com/poiesic/seokit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func testCatalog() *catalog.Catalog {
	cat := catalog.Default()
	cat.Locations = []string{"Durban", "Paarl"}
	cat.Services = []string{"hair salon", "spa", "Brazilian wax"}
	return cat
}

func newAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(testCatalog(), opts...)
	require.NoError(t, err)
	t.Cleanup(a.Release)
	return a
}

func TestAnalyze_Categories(t *testing.T) {
	a := newAnalyzer(t)

	keywords := []string{
		"spa in Durban",             // location, service
		"best hair salon near me",   // service, near me
		"barber prices",             // price
		"nail bar cost",             // price
		"Brazilian wax in Paarl",    // location only: probes are matched against the lower-cased keyword
		"durban spa",                // service only: locations are case-sensitive
		"Fresha alternative Durban", // location
		"Hair Salon Near Me",        // service, near me (lower-cased)
	}

	stats, err := a.Analyze(context.Background(), keywords)
	require.NoError(t, err)

	assert.Equal(t, 8, stats.Total)
	assert.Equal(t, 3, stats.LocationBased)
	assert.Equal(t, 4, stats.ServiceBased)
	assert.Equal(t, 2, stats.NearMe)
	assert.Equal(t, 2, stats.PriceRelated)
}

func TestAnalyze_AverageLength(t *testing.T) {
	a := newAnalyzer(t)

	stats, err := a.Analyze(context.Background(), []string{"ab", "abcd", "ßü"})
	require.NoError(t, err)

	avg, err := stats.AverageLength()
	require.NoError(t, err)
	// Length counts characters, not bytes
	assert.InDelta(t, 8.0/3.0, avg, 1e-9)
	assert.Equal(t, "2.7", fmt.Sprintf("%.1f", avg))
}

func TestAnalyze_Empty(t *testing.T) {
	a := newAnalyzer(t)

	_, err := a.Analyze(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDegenerateInput)
}

func TestStats_AverageLengthEmpty(t *testing.T) {
	_, err := (&Stats{}).AverageLength()
	assert.ErrorIs(t, err, core.ErrDegenerateInput)
}

func TestAnalyze_ChunkingMatchesSequential(t *testing.T) {
	keywords := make([]string, 0, 1000)
	for i := range 1000 {
		switch i % 4 {
		case 0:
			keywords = append(keywords, fmt.Sprintf("spa in Durban %d", i))
		case 1:
			keywords = append(keywords, fmt.Sprintf("barber near me %d", i))
		case 2:
			keywords = append(keywords, fmt.Sprintf("facial prices %d", i))
		default:
			keywords = append(keywords, fmt.Sprintf("hair salon Paarl cost %d", i))
		}
	}

	sequential := newAnalyzer(t, WithPoolSize(1), WithChunkSize(len(keywords)))
	parallel := newAnalyzer(t, WithPoolSize(4), WithChunkSize(7))

	want, err := sequential.Analyze(context.Background(), keywords)
	require.NoError(t, err)
	got, err := parallel.Analyze(context.Background(), keywords)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, 1000, got.Total)
	assert.Equal(t, 500, got.LocationBased)
	assert.Equal(t, 500, got.ServiceBased)
	assert.Equal(t, 250, got.NearMe)
	assert.Equal(t, 500, got.PriceRelated)
}

func TestAnalyze_ContextCancelled(t *testing.T) {
	a := newAnalyzer(t, WithChunkSize(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Analyze(ctx, []string{"spa", "barber"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewAnalyzer_ProbesUseListPrefix(t *testing.T) {
	cat := catalog.Default()
	a, err := NewAnalyzer(cat)
	require.NoError(t, err)
	defer a.Release()

	assert.Equal(t, cat.Locations[:ProbeCount], a.locationProbes)
	assert.Equal(t, cat.Services[:ProbeCount], a.serviceProbes)

	// "Killarney" is past the probe cutoff so it is not location-based
	stats, err := a.Analyze(context.Background(), []string{"spa Killarney"})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.LocationBased)
	assert.Equal(t, 1, stats.ServiceBased)
}

func TestNewAnalyzer_NilCatalog(t *testing.T) {
	_, err := NewAnalyzer(nil)
	assert.ErrorIs(t, err, core.ErrDegenerateInput)
}

func TestRelease_NoLeaks(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, err := NewAnalyzer(testCatalog(), WithPoolSize(3), WithChunkSize(2))
	require.NoError(t, err)

	_, err = a.Analyze(context.Background(), []string{"spa", "barber", "spa in Durban", "cost"})
	require.NoError(t, err)

	a.Release()
	a.Release() // second call is a no-op
}
