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


// Package generate expands the keyword catalog into the set of distinct
// candidate SEO keywords.
//
// Seven rules each contribute formatted strings to one set. Every rule is
// available as an ordered sequence via Generator.Candidates so it can be
// inspected on its own; Generator.Run drains all of them into a Result that
// keeps the raw, pre-dedup count of each rule alongside the unique set.
package generate
