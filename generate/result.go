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
	"maps"
	"slices"
	"time"

	"github.com/poiesic/seokit/core"
)

// Result is the deduplicated keyword set produced by a Generator run.
// Raw counts are pre-dedup products per rule and generally exceed Len.
type Result struct {
	keywords  map[string]core.Rule // keyword -> first rule that produced it
	rawCounts [core.RuleCount]uint64
	elapsed   time.Duration
}

func newResult() *Result {
	return &Result{keywords: make(map[string]core.Rule)}
}

func (r *Result) add(rule core.Rule, keyword string) {
	r.rawCounts[rule-1]++
	if _, ok := r.keywords[keyword]; !ok {
		r.keywords[keyword] = rule
	}
}

// Len returns the number of unique keywords.
func (r *Result) Len() int {
	return len(r.keywords)
}

// RuleOf returns the first rule that produced keyword.
func (r *Result) RuleOf(keyword string) (core.Rule, bool) {
	rule, ok := r.keywords[keyword]
	return rule, ok
}

// RawCount returns the number of candidates a rule produced before dedup.
func (r *Result) RawCount(rule core.Rule) uint64 {
	if core.ValidateRule(rule) != nil {
		return 0
	}
	return r.rawCounts[rule-1]
}

// RawCounts returns the raw count of every rule, indexed by Rule-1.
func (r *Result) RawCounts() []uint64 {
	return slices.Clone(r.rawCounts[:])
}

// RawTotal returns the sum of raw counts over all rules.
func (r *Result) RawTotal() uint64 {
	var total uint64
	for _, c := range r.rawCounts {
		total += c
	}
	return total
}

// Elapsed returns how long the run took.
func (r *Result) Elapsed() time.Duration {
	return r.elapsed
}

// Sorted returns the unique keywords in lexicographic (byte) order, which
// for UTF-8 text is code point order.
func (r *Result) Sorted() []string {
	return slices.Sorted(maps.Keys(r.keywords))
}
