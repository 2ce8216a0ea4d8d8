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


// Package storage provides the storage abstraction for the keyword run catalog.
//
// The catalog is optional. When enabled it records every generation run and
// every keyword ever produced, so successive runs can report which keywords are
// new and the full history can be exported again.
//
// # Architecture
//
//   - Repository: lifecycle shared by all repositories
//   - RunRepository: generation runs
//   - KeywordRepository: keyword records with first-seen and last-seen data
//
// Values are serialized with mus-go (see serialization.go). The badger
// subpackage provides the BadgerDB implementation:
//
//	runs, keywords, backend, err := badger.OpenRepositories("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// Tests use an in-memory database:
//
//	runs, keywords, backend, err := badger.NewMemoryRepositories()
//
// # Context Support
//
// All repository methods accept context.Context for cancellation.
// Long operations check it between transactions.
package storage
