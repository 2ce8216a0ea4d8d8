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


package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/seokit/core"
	"github.com/poiesic/seokit/storage"
)

// RunRepository implements storage.RunRepository for BadgerDB.
type RunRepository struct {
	backend *Backend
}

var _ storage.RunRepository = (*RunRepository)(nil)

// NewRunRepository creates a new RunRepository.
func NewRunRepository(backend *Backend) *RunRepository {
	return &RunRepository{
		backend: backend,
	}
}

// Close releases resources. RunRepository has no resources to release.
func (r *RunRepository) Close() error {
	return nil
}

// SaveRun stores or replaces a run and its start-time index entry.
func (r *RunRepository) SaveRun(ctx context.Context, run *core.Run) error {
	if err := core.ValidateRun(run); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRunKey(run.Id)

		old, err := readValue(tx, key, storage.UnmarshalRun)
		if err != nil {
			return err
		}
		if old != nil && !old.StartedAt.Equal(run.StartedAt) {
			if err := tx.Delete(makeRunStartKey(old.StartedAt, old.Id)); err != nil {
				return err
			}
		}

		if err := tx.Set(key, storage.MarshalRun(run)); err != nil {
			return err
		}
		if err := tx.Set(makeRunStartKey(run.StartedAt, run.Id), []byte{}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetRun retrieves a run by ID.
func (r *RunRepository) GetRun(ctx context.Context, id string) (*core.Run, error) {
	var result *core.Run
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readValue(tx, makeRunKey(id), storage.UnmarshalRun)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListRuns returns every run, oldest first.
func (r *RunRepository) ListRuns(ctx context.Context) ([]*core.Run, error) {
	var results []*core.Run
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		prefix := []byte(runStartPrefix)
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			id := runIDFromStartKey(iter.Item().Key())
			run, err := readValue(tx, makeRunKey(id), storage.UnmarshalRun)
			if err != nil {
				return err
			}
			if run == nil {
				return fmt.Errorf("run %s: index entry without record: %w", id, storage.ErrNotFound)
			}
			results = append(results, run)
		}
		return nil
	}, false)

	return results, err
}
