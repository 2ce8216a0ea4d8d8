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


package analysis

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/seokit/catalog"
	"github.com/poiesic/seokit/core"
)

const (
	// ProbeCount is how many leading locations and services are used as
	// substring probes for the location-based and service-based categories.
	ProbeCount = 10

	// DefaultChunkSize is the number of keywords counted per pool task.
	DefaultChunkSize = 4096

	releaseTimeout = 5 * time.Second
)

// Stats holds the keyword distribution of a keyword set.
type Stats struct {
	Total         int
	TotalLength   int // Sum of keyword lengths in Unicode code points
	LocationBased int
	ServiceBased  int
	NearMe        int
	PriceRelated  int
}

// AverageLength returns the mean keyword length in characters.
// Returns a *core.DegenerateInputError when the set is empty.
func (s *Stats) AverageLength() (float64, error) {
	if s.Total == 0 {
		return 0, &core.DegenerateInputError{Field: "keywords", Reason: "set is empty"}
	}
	return float64(s.TotalLength) / float64(s.Total), nil
}

func (s *Stats) merge(other *Stats) {
	s.Total += other.Total
	s.TotalLength += other.TotalLength
	s.LocationBased += other.LocationBased
	s.ServiceBased += other.ServiceBased
	s.NearMe += other.NearMe
	s.PriceRelated += other.PriceRelated
}

// Analyzer counts keyword categories using a worker pool.
type Analyzer struct {
	locationProbes []string
	serviceProbes  []string
	pool           *ants.Pool
	chunkSize      int
	logger         *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU(); values below 1 select the default.
func WithPoolSize(size int) Option {
	return func(a *Analyzer) error {
		if size < 1 {
			return nil
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if a.pool != nil {
			_ = a.pool.ReleaseTimeout(releaseTimeout)
		}
		a.pool = pool
		return nil
	}
}

// WithChunkSize sets how many keywords each pool task counts.
func WithChunkSize(size int) Option {
	return func(a *Analyzer) error {
		if size < 1 {
			size = DefaultChunkSize
		}
		a.chunkSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAnalyzer creates an Analyzer probing the first ProbeCount locations
// and services of the catalog. Call Release when done.
func NewAnalyzer(cat *catalog.Catalog, opts ...Option) (*Analyzer, error) {
	if cat == nil {
		return nil, &core.DegenerateInputError{Field: "catalog", Reason: "is nil"}
	}

	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		locationProbes: catalog.Top(cat.Locations, ProbeCount),
		serviceProbes:  catalog.Top(cat.Services, ProbeCount),
		pool:           pool,
		chunkSize:      DefaultChunkSize,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(a); optErr != nil {
			a.Release()
			return nil, optErr
		}
	}

	return a, nil
}

// Analyze counts the keyword categories of keywords. The slice is only read.
// An empty slice yields a *core.DegenerateInputError.
func (a *Analyzer) Analyze(ctx context.Context, keywords []string) (*Stats, error) {
	if len(keywords) == 0 {
		return nil, &core.DegenerateInputError{Field: "keywords", Reason: "set is empty"}
	}

	chunks := (len(keywords) + a.chunkSize - 1) / a.chunkSize
	partials := make([]Stats, chunks)
	errs := make([]error, chunks)

	var wg sync.WaitGroup
	for i := 0; i < chunks; i++ {
		start := i * a.chunkSize
		end := min(start+a.chunkSize, len(keywords))
		chunk := keywords[start:end]
		partial := &partials[i]
		idx := i

		wg.Add(1)
		err := a.pool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			a.count(chunk, partial)
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	stats := &Stats{}
	for i := range partials {
		stats.merge(&partials[i])
	}

	a.logger.Debug("keyword analysis finished", "keywords", stats.Total, "chunks", chunks)
	return stats, nil
}

// count tallies one chunk into s.
func (a *Analyzer) count(keywords []string, s *Stats) {
	for _, keyword := range keywords {
		s.Total++
		s.TotalLength += utf8.RuneCountInString(keyword)

		if containsAny(keyword, a.locationProbes) {
			s.LocationBased++
		}

		lower := strings.ToLower(keyword)
		if containsAny(lower, a.serviceProbes) {
			s.ServiceBased++
		}
		if strings.Contains(lower, "near me") {
			s.NearMe++
		}
		if strings.Contains(lower, "price") || strings.Contains(lower, "cost") {
			s.PriceRelated++
		}
	}
}

func containsAny(s string, probes []string) bool {
	for _, p := range probes {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// Release releases the worker pool. The Analyzer must not be used afterwards.
func (a *Analyzer) Release() {
	if a.pool == nil {
		return
	}
	if err := a.pool.ReleaseTimeout(releaseTimeout); err != nil {
		a.logger.Warn("analysis pool did not release cleanly", "err", err)
	}
	a.pool = nil
}
