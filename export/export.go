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


// Package export writes keyword lists as plain UTF-8 text, one keyword per line.
package export

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
)

// Write writes each keyword followed by a newline and returns the number of
// lines written.
func Write(w io.Writer, keywords iter.Seq[string]) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for keyword := range keywords {
		if _, err := bw.WriteString(keyword); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, err
	}
	return n, nil
}

// WriteFile writes keywords to path, truncating any existing file.
// The file is closed before WriteFile returns; a partially written file is
// left in place on error.
func WriteFile(path string, keywords []string) (int, error) {
	return WriteFileSeq(path, slices.Values(keywords))
}

// WriteFileSeq is WriteFile for a keyword sequence.
func WriteFileSeq(path string, keywords iter.Seq[string]) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating keyword file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing keyword file: %w", closeErr)
		}
	}()

	n, err = Write(f, keywords)
	if err != nil {
		return n, fmt.Errorf("writing keyword file: %w", err)
	}
	return n, nil
}
