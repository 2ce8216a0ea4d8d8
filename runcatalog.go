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
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/poiesic/seokit/core"
	"github.com/poiesic/seokit/export"
	"github.com/poiesic/seokit/storage"
	"github.com/poiesic/seokit/storage/badger"
)

var errStopIteration = errors.New("stop iteration")

// RunCatalog records generation runs and every keyword they produced.
type RunCatalog struct {
	backend  *badger.Backend
	runs     storage.RunRepository
	keywords storage.KeywordRepository
	logger   *slog.Logger
}

// OpenRunCatalog opens or creates the catalog in the directory at path.
func OpenRunCatalog(path string) (*RunCatalog, error) {
	runs, keywords, backend, err := badger.OpenRepositories(path)
	if err != nil {
		return nil, fmt.Errorf("opening run catalog: %w", err)
	}
	return newRunCatalog(backend, runs, keywords), nil
}

func newRunCatalog(backend *badger.Backend, runs storage.RunRepository, keywords storage.KeywordRepository) *RunCatalog {
	return &RunCatalog{
		backend:  backend,
		runs:     runs,
		keywords: keywords,
		logger:   slog.Default(),
	}
}

// Close closes the repositories and the backend. Closing twice is a no-op.
func (c *RunCatalog) Close() error {
	if c.backend.IsClosed() {
		return nil
	}
	if err := c.keywords.Close(); err != nil {
		c.logger.Error("error closing keyword repository", "err", err)
		return err
	}
	if err := c.runs.Close(); err != nil {
		c.logger.Error("error closing run repository", "err", err)
		return err
	}
	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (c *RunCatalog) Runs() storage.RunRepository {
	return c.runs
}

func (c *RunCatalog) Keywords() storage.KeywordRepository {
	return c.keywords
}

// Record stores the keywords of a finished run, sets its NewCount and saves it.
func (c *RunCatalog) Record(ctx context.Context, run *core.Run, keywords []string, ruleOf func(string) core.Rule) error {
	if err := core.ValidateRun(run); err != nil {
		return err
	}

	added, err := c.keywords.RecordKeywords(ctx, run, keywords, ruleOf)
	if err != nil {
		return fmt.Errorf("recording keywords: %w", err)
	}
	run.NewCount = added

	if err := c.runs.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	c.logger.Info("run recorded", "run", run.Id, "unique", run.UniqueCount, "new", added)
	return nil
}

// Export writes catalog keywords in sorted order to path. When runID is not
// empty only keywords first seen in that run are written.
func (c *RunCatalog) Export(ctx context.Context, path, runID string) (int, error) {
	if runID != "" {
		if _, err := c.runs.GetRun(ctx, runID); err != nil {
			return 0, fmt.Errorf("run %s: %w", runID, err)
		}
	}

	var iterErr error
	n, err := export.WriteFileSeq(path, c.keywordTexts(ctx, runID, &iterErr))
	if err != nil {
		return n, err
	}
	if iterErr != nil {
		return n, fmt.Errorf("reading catalog: %w", iterErr)
	}
	return n, nil
}

// keywordTexts yields catalog keywords in key order. A storage error ends
// the sequence and is stored in *errp.
func (c *RunCatalog) keywordTexts(ctx context.Context, runID string, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		err := c.keywords.ForEachKeyword(ctx, func(r *core.KeywordRecord) error {
			if runID != "" && r.FirstRunId != runID {
				return nil
			}
			if !yield(r.Text) {
				return errStopIteration
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopIteration) {
			*errp = err
		}
	}
}
