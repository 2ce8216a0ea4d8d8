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


package storage

import (
	"context"

	"github.com/poiesic/seokit/core"
)

// Repository provides the lifecycle shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// Close releases resources held by the repository.
	Close() error
}

// RunRepository records generation runs.
type RunRepository interface {
	Repository
	// SaveRun stores or replaces a run. The run must pass core.ValidateRun.
	SaveRun(ctx context.Context, run *core.Run) error

	// GetRun retrieves a run by ID.
	// Returns ErrNotFound if the run doesn't exist.
	GetRun(ctx context.Context, id string) (*core.Run, error)

	// ListRuns returns all runs ordered by start time, oldest first.
	ListRuns(ctx context.Context) ([]*core.Run, error)
}

// KeywordRepository tracks every keyword ever generated.
type KeywordRepository interface {
	Repository
	// RecordKeywords upserts one record per keyword for the given run.
	// Existing records keep their first-seen data and get the run as last seen.
	// ruleOf reports the rule that produced a keyword in this run.
	// Returns the number of keywords that had no record before.
	RecordKeywords(ctx context.Context, run *core.Run, keywords []string, ruleOf func(string) core.Rule) (uint64, error)

	// GetKeyword retrieves the record for a keyword.
	// Returns ErrNotFound if the keyword was never recorded.
	GetKeyword(ctx context.Context, text string) (*core.KeywordRecord, error)

	// CountKeywords returns the number of recorded keywords.
	CountKeywords(ctx context.Context) (uint64, error)

	// ForEachKeyword calls fn for every record in lexicographic keyword order.
	// Iteration stops at the first error returned by fn.
	ForEachKeyword(ctx context.Context, fn func(*core.KeywordRecord) error) error
}
