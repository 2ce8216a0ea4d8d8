package seokit

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/seokit/catalog"
	"github.com/poiesic/seokit/config"
	"github.com/poiesic/seokit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "keyword_list.txt")
	cfg.ProgressInterval = 5
	cfg.PoolSize = 2
	cfg.Catalog = &catalog.Catalog{
		Brand:             "Stylr SA",
		Market:            "South Africa",
		Services:          []string{"spa", "barber"},
		Locations:         []string{"Durban", "Paarl", "Sandton"},
		Prefixes:          []string{"best", "cheap"},
		Suffixes:          []string{"near me", "prices"},
		HighValuePrefixes: []string{"best"},
		HighValueSuffixes: []string{"near me", "cost"},
		Competitors:       []string{"Fresha"},
		Variations: []catalog.Variation{
			{Service: "spa", Variants: []string{"day spa"}},
		},
		Cutoffs: catalog.Cutoffs{HighValue: 2, Competitor: 2, Variation: 2},
	}
	return cfg
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(data), "\n"))
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestJob_Run(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	job, err := NewJob(cfg, WithOutput(&out))
	require.NoError(t, err)

	summary, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, summary.Recorded)
	assert.Equal(t, cfg.Output, summary.OutputPath)

	lines := readLines(t, cfg.Output)
	assert.Len(t, lines, int(summary.Run.UniqueCount))
	assert.True(t, slicesSorted(lines))
	assert.Contains(t, lines, "spa in Durban")
	assert.Contains(t, lines, "best spa Paarl near me")
	assert.Contains(t, lines, "Fresha alternative Paarl")
	assert.Contains(t, lines, "day spa near me Paarl")

	assert.Equal(t, summary.Stats.Total, len(lines))
	assert.Len(t, summary.Run.RawCounts, core.RuleCount)
	assert.LessOrEqual(t, summary.Run.UniqueCount, summary.Run.RawTotal())
	assert.NotEmpty(t, summary.Run.Id)
	assert.False(t, summary.Run.FinishedAt.Before(summary.Run.StartedAt))

	report := out.String()
	assert.Contains(t, report, "Generating keywords...\n")
	assert.Contains(t, report, "Type 1: [Service] in [Location]\n")
	assert.Contains(t, report, "  Progress: 5 keywords...\n")
	assert.Contains(t, report, "Total Unique Keywords Generated: ")
	assert.Contains(t, report, "✅ Keyword list saved to "+cfg.Output+"\n")
	assert.Contains(t, report, "Keyword Distribution:\n")
	assert.Contains(t, report, "1. Review "+cfg.Output+"\n")
	assert.Contains(t, report, "4. Submit sitemap to Google Search Console\n")
	assert.NotContains(t, report, "recorded")
}

func slicesSorted(lines []string) bool {
	for i := 1; i < len(lines); i++ {
		if lines[i-1] >= lines[i] {
			return false
		}
	}
	return true
}

func TestJob_OutputOverwritten(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Output, []byte("stale\nlines\n"), 0644))

	job, err := NewJob(cfg)
	require.NoError(t, err)
	_, err = job.Run(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, readLines(t, cfg.Output), "stale")
}

func TestJob_OutputDirectoryMissing(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output = filepath.Join(t.TempDir(), "missing", "keyword_list.txt")

	job, err := NewJob(cfg)
	require.NoError(t, err)

	_, err = job.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "creating keyword file")
}

func TestJob_Idempotent(t *testing.T) {
	cfg := testConfig(t)

	job, err := NewJob(cfg)
	require.NoError(t, err)

	_, err = job.Run(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	_, err = job.Run(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNewJob_Invalid(t *testing.T) {
	_, err := NewJob(nil)
	assert.ErrorIs(t, err, core.ErrDegenerateInput)

	cfg := testConfig(t)
	cfg.Catalog.Services = nil
	_, err = NewJob(cfg)
	assert.ErrorIs(t, err, core.ErrDegenerateInput)
}

func TestJob_Cancelled(t *testing.T) {
	job, err := NewJob(testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = job.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJob_RecordsRuns(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB = filepath.Join(t.TempDir(), "catalog")
	ctx := context.Background()

	var out bytes.Buffer
	job, err := NewJob(cfg, WithOutput(&out))
	require.NoError(t, err)

	first, err := job.Run(ctx)
	require.NoError(t, err)
	assert.True(t, first.Recorded)
	assert.Equal(t, first.Run.UniqueCount, first.Run.NewCount)
	assert.Contains(t, out.String(), "Run "+first.Run.Id+" recorded")

	second, err := job.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), second.Run.NewCount)
	assert.NotEqual(t, first.Run.Id, second.Run.Id)

	rc, err := OpenRunCatalog(cfg.DB)
	require.NoError(t, err)
	defer rc.Close()

	runs, err := rc.Runs().ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first.Run.Id, runs[0].Id)

	record, err := rc.Keywords().GetKeyword(ctx, "spa in Durban")
	require.NoError(t, err)
	assert.Equal(t, core.RuleServiceInLocation, record.Rule)
	assert.Equal(t, first.Run.Id, record.FirstRunId)
	assert.Equal(t, second.Run.Id, record.LastRunId)

	exported := filepath.Join(t.TempDir(), "export.txt")
	n, err := rc.Export(ctx, exported, "")
	require.NoError(t, err)
	assert.Equal(t, int(first.Run.UniqueCount), n)
	assert.Equal(t, readLines(t, cfg.Output), readLines(t, exported))

	n, err = rc.Export(ctx, exported, second.Run.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
