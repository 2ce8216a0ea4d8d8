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


package generate

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"time"

	"github.com/poiesic/seokit/catalog"
	"github.com/poiesic/seokit/core"
)

// DefaultProgressInterval is the number of raw combinations between progress lines.
const DefaultProgressInterval = 10000

// Generator expands a catalog into keyword candidates.
type Generator struct {
	catalog          *catalog.Catalog
	out              io.Writer
	progressInterval int
	logger           *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutput sets where the rule headers and progress lines are written.
// Default is io.Discard.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		if w == nil {
			w = io.Discard
		}
		g.out = w
	}
}

// WithProgressInterval sets how many raw combinations pass between progress lines.
func WithProgressInterval(n int) Option {
	return func(g *Generator) {
		if n < 1 {
			n = DefaultProgressInterval
		}
		g.progressInterval = n
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
	}
}

// New creates a Generator for the given catalog.
// Returns a *core.DegenerateInputError if the catalog cannot produce keywords.
func New(cat *catalog.Catalog, opts ...Option) (*Generator, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		catalog:          cat,
		out:              io.Discard,
		progressInterval: DefaultProgressInterval,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// tracksProgress reports whether a rule prints progress lines. Only the two
// largest nested loops do.
func tracksProgress(rule core.Rule) bool {
	return rule == core.RulePrefixServiceInLocation || rule == core.RuleServiceLocationSuffix
}

// Run drains every rule into a Result, printing rule headers, progress lines
// and raw per-rule counts to the configured output.
// The context is checked between rules.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	c := g.catalog
	start := time.Now()

	fmt.Fprintln(g.out, "Generating keywords...")
	fmt.Fprintf(g.out, "Services: %d\n", len(c.Services))
	fmt.Fprintf(g.out, "Locations: %d\n", len(c.Locations))
	fmt.Fprintf(g.out, "Prefix modifiers: %d\n", len(c.Prefixes))
	fmt.Fprintf(g.out, "Suffix modifiers: %d\n", len(c.Suffixes))
	fmt.Fprintln(g.out)

	result := newResult()
	tracker := NewProgressTracker(g.out, g.progressInterval)

	for _, rule := range core.AllRules() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprintf(g.out, "Type %d: %s\n", rule, rule)
		tracked := tracksProgress(rule)
		if tracked {
			tracker.Start()
		}

		for keyword := range g.Candidates(rule) {
			result.add(rule, keyword)
			if tracked {
				tracker.Increment(1)
			}
		}

		raw := result.RawCount(rule)
		fmt.Fprintf(g.out, "  Generated: %d keywords\n", raw)
		attrs := []any{"rule", int(rule), "raw", raw, "unique", result.Len()}
		if tracked {
			attrs = append(attrs, "progress", tracker.Count(), "elapsed", tracker.Elapsed())
		}
		g.logger.Debug("rule expanded", attrs...)
	}

	result.elapsed = time.Since(start)
	g.logger.Info("keyword generation finished",
		"unique", result.Len(), "raw", result.RawTotal(), "elapsed", result.elapsed)

	return result, nil
}

// Candidates returns the ordered candidate keywords of a single rule,
// before deduplication. Unknown rules yield nothing.
func (g *Generator) Candidates(rule core.Rule) iter.Seq[string] {
	c := g.catalog

	switch rule {
	case core.RuleServiceInLocation:
		return func(yield func(string) bool) {
			for _, service := range c.Services {
				for _, location := range c.Locations {
					if !yield(service + " in " + location) {
						return
					}
				}
			}
		}

	case core.RulePrefixServiceInLocation:
		return func(yield func(string) bool) {
			for _, prefix := range c.Prefixes {
				for _, service := range c.Services {
					for _, location := range c.Locations {
						if !yield(prefix + " " + service + " in " + location) {
							return
						}
					}
				}
			}
		}

	case core.RuleServiceSuffix:
		return func(yield func(string) bool) {
			for _, service := range c.Services {
				for _, suffix := range c.Suffixes {
					if !yield(service + " " + suffix) {
						return
					}
				}
			}
		}

	case core.RuleServiceLocationSuffix:
		return func(yield func(string) bool) {
			for _, service := range c.Services {
				for _, location := range c.Locations {
					for _, suffix := range c.Suffixes {
						if !yield(service + " " + location + " " + suffix) {
							return
						}
					}
				}
			}
		}

	case core.RuleHighValue:
		locations := c.TopLocations(c.Cutoffs.HighValue)
		return func(yield func(string) bool) {
			for _, prefix := range c.HighValuePrefixes {
				for _, service := range c.Services {
					for _, location := range locations {
						for _, suffix := range c.HighValueSuffixes {
							if !yield(prefix + " " + service + " " + location + " " + suffix) {
								return
							}
						}
					}
				}
			}
		}

	case core.RuleCompetitor:
		locations := c.TopLocations(c.Cutoffs.Competitor)
		return func(yield func(string) bool) {
			for _, competitor := range c.Competitors {
				fixed := []string{
					competitor + " alternative " + c.Market,
					c.Brand + " vs " + competitor,
					"better than " + competitor + " " + c.Market,
				}
				for _, keyword := range fixed {
					if !yield(keyword) {
						return
					}
				}
				for _, location := range locations {
					if !yield(competitor + " " + location) {
						return
					}
					if !yield(competitor + " alternative " + location) {
						return
					}
				}
			}
		}

	case core.RuleServiceVariation:
		locations := c.TopLocations(c.Cutoffs.Variation)
		return func(yield func(string) bool) {
			for _, variation := range c.Variations {
				for _, variant := range variation.Variants {
					for _, location := range locations {
						if !yield(variant + " " + location) {
							return
						}
						if !yield(variant + " near me " + location) {
							return
						}
					}
				}
			}
		}

	default:
		return func(func(string) bool) {}
	}
}
