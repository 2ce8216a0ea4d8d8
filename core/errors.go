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
	"errors"
	"fmt"
)

// Domain validation errors
var (
	// ErrDegenerateInput indicates an input list or keyword set that cannot
	// produce meaningful output (empty list, empty entry, empty set).
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInvalidRule indicates a Rule value outside the known templates.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidKeywordRecord indicates a KeywordRecord failed validation.
	ErrInvalidKeywordRecord = errors.New("invalid keyword record")

	// ErrInvalidRun indicates a Run failed validation.
	ErrInvalidRun = errors.New("invalid run")

	// ErrEmptyKeyword indicates the keyword text is empty.
	ErrEmptyKeyword = errors.New("keyword cannot be empty")

	// ErrEmptyRunID indicates a run without an identifier.
	ErrEmptyRunID = errors.New("run id cannot be empty")
)

// DegenerateInputError reports which input made the computation degenerate.
// It matches ErrDegenerateInput with errors.Is.
type DegenerateInputError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrDegenerateInput, e.Field, e.Reason)
}

// Unwrap returns ErrDegenerateInput.
func (e *DegenerateInputError) Unwrap() error {
	return ErrDegenerateInput
}
