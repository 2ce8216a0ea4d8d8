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


// Package locations lists South African cities per province for manual
// transcription into the front-end location data file, and renders candidate
// city entries for them.
//
// Nothing in this package writes the front-end file; output is for a human.
package locations

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/poiesic/seokit/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultDescriptionTemplate is the city description used when none is given.
// {city} and {province} are replaced by display names.
const DefaultDescriptionTemplate = "Find and book the best hair salons, barbers, nail technicians and spas in {city}, {province}."

// ErrUnknownFormat is returned for an unsupported entry output format.
var ErrUnknownFormat = errors.New("unknown output format")

// nearMeServices are the services paired with "near me" in city keywords.
var nearMeServices = []string{
	"hair salon", "nail salon", "spa", "beauty salon", "hairdresser",
	"gel nails", "massage", "manicure", "makeup artist", "facial",
}

// Province is a province slug with its ordered city slugs.
type Province struct {
	Slug   string
	Cities []string
}

// Name returns the display name of the province.
func (p Province) Name() string {
	return DisplayName(p.Slug)
}

// Provinces returns the compiled-in provinces. The result may be modified.
func Provinces() []Province {
	out := make([]Province, len(provinces))
	for i, p := range provinces {
		out[i] = Province{Slug: p.Slug, Cities: slices.Clone(p.Cities)}
	}
	return out
}

// TotalCities counts city slugs across provinces, repeats included.
func TotalCities(ps []Province) int {
	total := 0
	for _, p := range ps {
		total += len(p.Cities)
	}
	return total
}

// Duplicate is a city slug listed more than once.
type Duplicate struct {
	Slug      string
	Provinces []string // Province slug of every occurrence, in order
}

// Duplicates returns slugs that occur more than once, ordered by first occurrence.
func Duplicates(ps []Province) []Duplicate {
	seen := make(map[string][]string)
	var order []string
	for _, p := range ps {
		for _, city := range p.Cities {
			if _, ok := seen[city]; !ok {
				order = append(order, city)
			}
			seen[city] = append(seen[city], p.Slug)
		}
	}

	var dups []Duplicate
	for _, city := range order {
		if len(seen[city]) > 1 {
			dups = append(dups, Duplicate{Slug: city, Provinces: seen[city]})
		}
	}
	return dups
}

// DisplayName converts a slug to a display name: hyphens become spaces and
// every word is title-cased ("kentucky-on-sea" -> "Kentucky On Sea").
func DisplayName(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// BuildEntry renders the candidate entry for one city.
func BuildEntry(slug, province, descriptionTemplate string) core.CityEntry {
	name := DisplayName(slug)

	description := strings.NewReplacer(
		"{city}", name,
		"{province}", province,
	).Replace(descriptionTemplate)

	keywords := make([]string, len(nearMeServices))
	for i, service := range nearMeServices {
		keywords[i] = service + " near me " + name
	}

	return core.CityEntry{
		Slug:        slug,
		Name:        name,
		Province:    province,
		Description: description,
		Keywords:    keywords,
	}
}

// Entries renders entries for every city of every province, in order.
func Entries(ps []Province, descriptionTemplate string) []core.CityEntry {
	entries := make([]core.CityEntry, 0, TotalCities(ps))
	for _, p := range ps {
		name := p.Name()
		for _, city := range p.Cities {
			entries = append(entries, BuildEntry(city, name, descriptionTemplate))
		}
	}
	return entries
}

// WriteEntries encodes entries as "yaml" or "json".
func WriteEntries(w io.Writer, entries []core.CityEntry, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding entries: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding entries: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Report prints the transcription worksheet summary.
func Report(w io.Writer, ps []Province) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(w, "Location expansion helper")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cities to add to locationData.ts")
	fmt.Fprintln(w, "Add these to the TypeScript file by hand")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total cities to add: %d\n", TotalCities(ps))
	fmt.Fprintln(w)
	for _, p := range ps {
		fmt.Fprintf(w, "%s: %d cities\n", p.Slug, len(p.Cities))
	}
	fmt.Fprintln(w)

	if dups := Duplicates(ps); len(dups) > 0 {
		fmt.Fprintln(w, "Listed more than once:")
		for _, d := range dups {
			fmt.Fprintf(w, "  %s (%s)\n", d.Slug, strings.Join(d.Provinces, ", "))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "1. Review the cities list above")
	fmt.Fprintln(w, "2. Add them to frontend/src/lib/locationData.ts")
	fmt.Fprintln(w, "3. Ensure proper formatting and SEO keywords")
	fmt.Fprintln(w, "4. Run the keyword generator to create pages for all locations")
}
