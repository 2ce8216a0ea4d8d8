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


package seokit

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/poiesic/seokit/analysis"
	"github.com/poiesic/seokit/core"
)

var banner = strings.Repeat("=", 60)

func commas[T ~int | ~uint64](n T) string {
	return humanize.Comma(int64(n))
}

func writeTotal(w io.Writer, unique int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Total Unique Keywords Generated: %d\n", unique)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
}

func writeAnalysis(w io.Writer, stats *analysis.Stats) error {
	avg, err := stats.AverageLength()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Keyword Analysis:")
	fmt.Fprintf(w, "  - Total keywords: %s\n", commas(stats.Total))
	fmt.Fprintf(w, "  - Average length: %.1f characters\n", avg)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Keyword Distribution:")
	fmt.Fprintf(w, "  - Location-based: %s\n", commas(stats.LocationBased))
	fmt.Fprintf(w, "  - Service-based: %s\n", commas(stats.ServiceBased))
	fmt.Fprintf(w, "  - 'Near me' keywords: %s\n", commas(stats.NearMe))
	fmt.Fprintf(w, "  - Price-related: %s\n", commas(stats.PriceRelated))
	fmt.Fprintln(w)
	return nil
}

func writeNextSteps(w io.Writer, output string) {
	fmt.Fprintln(w, "✅ Keyword generation complete!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "1. Review %s\n", output)
	fmt.Fprintln(w, "2. Use these keywords to create content pages")
	fmt.Fprintln(w, "3. Update your site's metadata with relevant keywords")
	fmt.Fprintln(w, "4. Submit sitemap to Google Search Console")
}

// WriteCatalogTotal prints the number of keywords the run catalog holds.
func WriteCatalogTotal(w io.Writer, count uint64) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Catalog holds %s keywords\n", commas(count))
}

// WriteKeyword prints the catalog record of a single keyword.
func WriteKeyword(w io.Writer, r *core.KeywordRecord) {
	fmt.Fprintf(w, "Keyword:    %s\n", r.Text)
	fmt.Fprintf(w, "Rule:       %d (%s)\n", r.Rule, r.Rule)
	fmt.Fprintf(w, "First seen: %s (run %s)\n", r.FirstSeen.UTC().Format(time.DateTime), r.FirstRunId)
	fmt.Fprintf(w, "Last seen:  %s (run %s)\n", r.LastSeen.UTC().Format(time.DateTime), r.LastRunId)
}

// WriteHistory prints one line per run, oldest first.
func WriteHistory(w io.Writer, runs []*core.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return
	}

	fmt.Fprintf(w, "%-36s  %-20s  %8s  %12s  %12s  %12s\n", "RUN", "STARTED", "SECONDS", "RAW", "UNIQUE", "NEW")
	for _, r := range runs {
		var seconds float64
		if !r.FinishedAt.IsZero() {
			seconds = r.FinishedAt.Sub(r.StartedAt).Seconds()
		}
		fmt.Fprintf(w, "%-36s  %-20s  %8.1f  %12s  %12s  %12s\n",
			r.Id,
			r.StartedAt.UTC().Format(time.DateTime),
			seconds,
			commas(r.RawTotal()),
			commas(r.UniqueCount),
			commas(r.NewCount),
		)
	}
}
