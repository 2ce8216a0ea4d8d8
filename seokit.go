// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package seokit generates the SEO keyword list for the Stylr SA booking site.
//
// A Job expands the configured catalog into keyword candidates, writes the
// sorted unique keywords to the output file, prints the analysis summary and
// optionally records the run in a BadgerDB run catalog.
package seokit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/seokit/analysis"
	"github.com/poiesic/seokit/config"
	"github.com/poiesic/seokit/core"
	"github.com/poiesic/seokit/export"
	"github.com/poiesic/seokit/generate"
)

// Job runs keyword generation end to end.
type Job struct {
	config *config.Config
	out    io.Writer
	logger *slog.Logger
	now    func() time.Time
}

// JobOption configures a Job.
type JobOption func(*Job)

// WithOutput sets where progress and the summary report are written.
// Default is io.Discard.
func WithOutput(w io.Writer) JobOption {
	return func(j *Job) {
		if w == nil {
			w = io.Discard
		}
		j.out = w
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) JobOption {
	return func(j *Job) {
		if logger == nil {
			logger = slog.Default()
		}
		j.logger = logger
	}
}

// Summary is the outcome of a Job.
type Summary struct {
	Run        *core.Run
	OutputPath string
	Stats      *analysis.Stats
	Recorded   bool // Run was stored in the run catalog
}

// NewJob validates cfg and creates a Job.
func NewJob(cfg *config.Config, opts ...JobOption) (*Job, error) {
	if cfg == nil {
		return nil, &core.DegenerateInputError{Field: "config", Reason: "is nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	j := &Job{
		config: cfg,
		out:    io.Discard,
		logger: slog.Default(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Run generates, writes and analyzes the keyword set. Output file errors are
// returned without retry; the file may be partially written.
func (j *Job) Run(ctx context.Context) (*Summary, error) {
	cfg := j.config
	run := &core.Run{
		Id:         uuid.NewString(),
		StartedAt:  j.now(),
		OutputPath: cfg.Output,
	}
	logger := j.logger.With("run", run.Id)

	gen, err := generate.New(cfg.Catalog,
		generate.WithOutput(j.out),
		generate.WithProgressInterval(cfg.ProgressInterval),
		generate.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	result, err := gen.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("generating keywords: %w", err)
	}
	keywords := result.Sorted()
	logger.Info("keywords generated", "unique", len(keywords), "elapsed", result.Elapsed())
	run.RawCounts = result.RawCounts()
	run.UniqueCount = uint64(len(keywords))

	writeTotal(j.out, len(keywords))

	fmt.Fprintf(j.out, "Saving keywords to %s...\n", cfg.Output)
	if _, err := export.WriteFile(cfg.Output, keywords); err != nil {
		return nil, err
	}
	fmt.Fprintf(j.out, "✅ Keyword list saved to %s\n", cfg.Output)
	fmt.Fprintln(j.out)

	analyzer, err := analysis.NewAnalyzer(cfg.Catalog,
		analysis.WithPoolSize(cfg.PoolSize),
		analysis.WithChunkSize(cfg.ChunkSize),
		analysis.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	defer analyzer.Release()

	stats, err := analyzer.Analyze(ctx, keywords)
	if err != nil {
		return nil, fmt.Errorf("analyzing keywords: %w", err)
	}
	if err := writeAnalysis(j.out, stats); err != nil {
		return nil, err
	}
	run.FinishedAt = j.now()

	summary := &Summary{
		Run:        run,
		OutputPath: cfg.Output,
		Stats:      stats,
	}

	if cfg.DB != "" {
		if err := j.record(ctx, run, keywords, result); err != nil {
			return nil, err
		}
		summary.Recorded = true
		fmt.Fprintf(j.out, "Run %s recorded: %s new keywords\n", run.Id, commas(run.NewCount))
		fmt.Fprintln(j.out)
	}

	writeNextSteps(j.out, cfg.Output)
	return summary, nil
}

func (j *Job) record(ctx context.Context, run *core.Run, keywords []string, result *generate.Result) error {
	rc, err := OpenRunCatalog(j.config.DB)
	if err != nil {
		return err
	}
	defer rc.Close()

	ruleOf := func(keyword string) core.Rule {
		rule, _ := result.RuleOf(keyword)
		return rule
	}
	return rc.Record(ctx, run, keywords, ruleOf)
}
