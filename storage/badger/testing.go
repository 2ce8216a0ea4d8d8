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

import "github.com/poiesic/seokit/storage"

// OpenRepositories opens the catalog at path and returns its run and keyword
// repositories. Caller must close the backend when done.
func OpenRepositories(path string) (storage.RunRepository, storage.KeywordRepository, *Backend, error) {
	return openRepositories(path, false)
}

// NewMemoryRepositories creates in-memory run and keyword repositories for testing.
// Caller must close the backend when done.
func NewMemoryRepositories() (storage.RunRepository, storage.KeywordRepository, *Backend, error) {
	return openRepositories("", true)
}

func openRepositories(path string, inMemory bool) (storage.RunRepository, storage.KeywordRepository, *Backend, error) {
	backend, err := OpenBackend(path, inMemory)
	if err != nil {
		return nil, nil, nil, err
	}
	return NewRunRepository(backend), NewKeywordRepository(backend), backend, nil
}
