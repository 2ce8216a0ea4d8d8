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

import "fmt"

// ValidateRule validates that a Rule has a known value.
func ValidateRule(rule Rule) error {
	if rule < RuleServiceInLocation || rule > RuleServiceVariation {
		return fmt.Errorf("%w: value %d", ErrInvalidRule, rule)
	}
	return nil
}

// ValidateKeywordRecord validates a KeywordRecord according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Rule must be valid
//   - FirstRunId must not be empty
//
// NOT validated:
//   - Id (derived from Text by the repository when 0)
//   - LastRunId (set by the repository on every run)
func ValidateKeywordRecord(record *KeywordRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidKeywordRecord)
	}

	if record.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidKeywordRecord, ErrEmptyKeyword)
	}

	if err := ValidateRule(record.Rule); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKeywordRecord, err)
	}

	if record.FirstRunId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidKeywordRecord, ErrEmptyRunID)
	}

	return nil
}

// ValidateRun validates a Run before it is stored.
func ValidateRun(run *Run) error {
	if run == nil {
		return fmt.Errorf("%w: run is nil", ErrInvalidRun)
	}

	if run.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRun, ErrEmptyRunID)
	}

	if len(run.RawCounts) != 0 && len(run.RawCounts) != RuleCount {
		return fmt.Errorf("%w: expected %d raw counts, got %d", ErrInvalidRun, RuleCount, len(run.RawCounts))
	}

	if run.UniqueCount > run.RawTotal() {
		return fmt.Errorf("%w: unique count %d exceeds raw total %d", ErrInvalidRun, run.UniqueCount, run.RawTotal())
	}

	return nil
}
