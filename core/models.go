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


package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Keyword IDs are derived from the keyword text so they are stable across runs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Rule identifies the template that produced a keyword candidate.
type Rule int

const (
	// RuleServiceInLocation produces "{service} in {location}".
	RuleServiceInLocation Rule = iota + 1
	// RulePrefixServiceInLocation produces "{prefix} {service} in {location}".
	RulePrefixServiceInLocation
	// RuleServiceSuffix produces "{service} {suffix}".
	RuleServiceSuffix
	// RuleServiceLocationSuffix produces "{service} {location} {suffix}".
	RuleServiceLocationSuffix
	// RuleHighValue produces "{prefix} {service} {location} {suffix}" over
	// the high-value prefixes, suffixes and top locations only.
	RuleHighValue
	// RuleCompetitor produces competitor comparison phrases.
	RuleCompetitor
	// RuleServiceVariation produces curated service variants paired with top locations.
	RuleServiceVariation
)

// RuleCount is the number of generation rules.
const RuleCount = int(RuleServiceVariation)

// AllRules returns every rule in generation order.
func AllRules() []Rule {
	rules := make([]Rule, 0, RuleCount)
	for r := RuleServiceInLocation; r <= RuleServiceVariation; r++ {
		rules = append(rules, r)
	}
	return rules
}

// String returns the template description of the rule.
func (r Rule) String() string {
	switch r {
	case RuleServiceInLocation:
		return "[Service] in [Location]"
	case RulePrefixServiceInLocation:
		return "[Modifier] [Service] in [Location]"
	case RuleServiceSuffix:
		return "[Service] [Suffix]"
	case RuleServiceLocationSuffix:
		return "[Service] [Location] [Suffix]"
	case RuleHighValue:
		return "[Modifier] [Service] [Location] [Suffix] (selective)"
	case RuleCompetitor:
		return "Competitor Keywords"
	case RuleServiceVariation:
		return "Service-specific variations"
	default:
		return "unknown"
	}
}

// Run describes one keyword generation run recorded in the catalog.
type Run struct {
	Id          string // UUID assigned when the run starts
	StartedAt   time.Time
	FinishedAt  time.Time
	OutputPath  string
	RawCounts   []uint64 // Pre-dedup candidates per rule, indexed by Rule-1
	UniqueCount uint64   // Size of the deduplicated keyword set
	NewCount    uint64   // Keywords not present in any earlier run
}

// RawTotal returns the sum of the per-rule raw counts.
func (r *Run) RawTotal() uint64 {
	var total uint64
	for _, c := range r.RawCounts {
		total += c
	}
	return total
}

// KeywordRecord is the catalog entry for a single keyword.
type KeywordRecord struct {
	Id         ID
	Text       string
	Rule       Rule // First rule that produced the keyword in its first run
	FirstRunId string
	FirstSeen  time.Time
	LastRunId  string
	LastSeen   time.Time
}

// CityEntry is a candidate entry for the front-end location data file.
type CityEntry struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Name        string   `json:"name" yaml:"name"`
	Province    string   `json:"province" yaml:"province"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}
