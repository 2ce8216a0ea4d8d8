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
	"encoding/binary"
	"time"
)

// Key prefixes for different data types
const (
	keywordPrefix  = "kw:"
	runPrefix      = "run:"
	runStartPrefix = "runts:"
)

// makeKeywordKey generates the key for a keyword record.
// Format: prefix + text, so prefix iteration yields keywords in byte order.
func makeKeywordKey(text string) []byte {
	buf := make([]byte, len(keywordPrefix)+len(text))
	offset := copy(buf, keywordPrefix)
	copy(buf[offset:], text)
	return buf
}

// keywordFromKey strips the prefix from a keyword key.
func keywordFromKey(key []byte) string {
	return string(key[len(keywordPrefix):])
}

// makeRunKey generates the key for a run by ID.
func makeRunKey(id string) []byte {
	return []byte(runPrefix + id)
}

// makeRunStartKey generates a composite key for the start-time index.
// Format: prefix + timestamp + id
func makeRunStartKey(startedAt time.Time, id string) []byte {
	prefixSize := len(runStartPrefix)
	buf := make([]byte, prefixSize+8+len(id))
	offset := copy(buf, runStartPrefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(startedAt.UnixMicro()))
	offset += 8
	copy(buf[offset:], id)
	return buf
}

// runIDFromStartKey extracts the run ID from a start-time index key.
func runIDFromStartKey(key []byte) string {
	return string(key[len(runStartPrefix)+8:])
}
