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
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/seokit/core"
	"github.com/poiesic/seokit/storage"
)

// keywordBatchSize bounds the number of keywords written per transaction.
const keywordBatchSize = 10000

// KeywordRepository implements storage.KeywordRepository for BadgerDB.
type KeywordRepository struct {
	backend   *Backend
	batchSize int
}

var _ storage.KeywordRepository = (*KeywordRepository)(nil)

// NewKeywordRepository creates a new KeywordRepository.
func NewKeywordRepository(backend *Backend) *KeywordRepository {
	return &KeywordRepository{
		backend:   backend,
		batchSize: keywordBatchSize,
	}
}

// Close releases resources. KeywordRepository has no resources to release.
func (r *KeywordRepository) Close() error {
	return nil
}

// RecordKeywords upserts keyword records for a run in batched transactions.
// A batch that exceeds badger's transaction limits is split and retried.
// Batches committed before an error stay committed.
func (r *KeywordRepository) RecordKeywords(ctx context.Context, run *core.Run, keywords []string, ruleOf func(string) core.Rule) (uint64, error) {
	if run == nil || run.Id == "" {
		return 0, core.ErrEmptyRunID
	}
	if ruleOf == nil {
		return 0, fmt.Errorf("%w: missing rule lookup", storage.ErrInvalidQuery)
	}

	var added uint64
	for start := 0; start < len(keywords); start += r.batchSize {
		if err := ctx.Err(); err != nil {
			return added, err
		}

		end := min(start+r.batchSize, len(keywords))
		n, err := r.recordBatch(run, keywords[start:end], ruleOf)
		if err != nil {
			return added, err
		}
		added += n
	}

	r.backend.logger.Debug("recorded keywords", "run", run.Id, "keywords", len(keywords), "new", added)
	return added, nil
}

func (r *KeywordRepository) recordBatch(run *core.Run, batch []string, ruleOf func(string) core.Rule) (uint64, error) {
	var added uint64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, text := range batch {
			key := makeKeywordKey(text)

			record, err := readValue(tx, key, storage.UnmarshalKeywordRecord)
			if err != nil {
				return err
			}

			if record == nil {
				record = &core.KeywordRecord{
					Id:         core.IDFromContent(text),
					Text:       text,
					Rule:       ruleOf(text),
					FirstRunId: run.Id,
					FirstSeen:  run.StartedAt,
				}
				if err := core.ValidateKeywordRecord(record); err != nil {
					return err
				}
				added++
			}
			record.LastRunId = run.Id
			record.LastSeen = run.StartedAt

			if err := tx.Set(key, storage.MarshalKeywordRecord(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if errors.Is(err, badger.ErrTxnTooBig) && len(batch) > 1 {
		half := len(batch) / 2
		r.backend.logger.Debug("splitting keyword batch", "size", len(batch))

		first, err := r.recordBatch(run, batch[:half], ruleOf)
		if err != nil {
			return first, err
		}
		second, err := r.recordBatch(run, batch[half:], ruleOf)
		return first + second, err
	}
	if err != nil {
		return 0, err
	}
	return added, nil
}

// GetKeyword retrieves the record for a keyword.
func (r *KeywordRepository) GetKeyword(ctx context.Context, text string) (*core.KeywordRecord, error) {
	var result *core.KeywordRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readValue(tx, makeKeywordKey(text), storage.UnmarshalKeywordRecord)
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

// CountKeywords counts keyword keys without reading values.
func (r *KeywordRepository) CountKeywords(ctx context.Context) (uint64, error) {
	var count uint64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		prefix := []byte(keywordPrefix)
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			count++
			if count%keywordBatchSize == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
		}
		return nil
	}, false)
	return count, err
}

// ForEachKeyword calls fn for every record in lexicographic keyword order.
func (r *KeywordRepository) ForEachKeyword(ctx context.Context, fn func(*core.KeywordRecord) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		prefix := []byte(keywordPrefix)
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		var seen int
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			seen++
			if seen%keywordBatchSize == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			item := iter.Item()
			var record *core.KeywordRecord
			err := item.Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalKeywordRecord(val)
				return err
			})
			if err != nil {
				return fmt.Errorf("keyword %q: %w", keywordFromKey(item.Key()), err)
			}
			if err := fn(record); err != nil {
				return err
			}
		}
		return nil
	}, false)
}
