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


package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/poiesic/seokit/core"
)

const (
	// DefaultBrand is the brand name used in competitor comparison phrases.
	DefaultBrand = "Stylr SA"

	// DefaultMarket is the market name used in competitor comparison phrases.
	DefaultMarket = "South Africa"

	// DefaultHighValueCutoff is the number of top locations used by the
	// high-value combination rule.
	DefaultHighValueCutoff = 50

	// DefaultCompetitorCutoff is the number of top locations paired with competitors.
	DefaultCompetitorCutoff = 30

	// DefaultVariationCutoff is the number of top locations paired with service variations.
	DefaultVariationCutoff = 40
)

// Variation is a base service with its curated variant phrasings.
type Variation struct {
	Service  string   `koanf:"service" validate:"required"`
	Variants []string `koanf:"variants" validate:"min=1,dive,required"`
}

// Cutoffs holds the top-N location prefixes used by the bounded rules.
type Cutoffs struct {
	HighValue  int `koanf:"high_value" validate:"min=0"`
	Competitor int `koanf:"competitor" validate:"min=0"`
	Variation  int `koanf:"variation" validate:"min=0"`
}

// Catalog holds every input list the keyword generator reads.
// Lists are ordered; the bounded rules take prefixes of Locations.
type Catalog struct {
	Brand             string      `koanf:"brand" validate:"required"`
	Market            string      `koanf:"market" validate:"required"`
	Services          []string    `koanf:"services" validate:"required,min=1,dive,required"`
	Locations         []string    `koanf:"locations" validate:"required,min=1,dive,required"`
	Prefixes          []string    `koanf:"prefixes" validate:"dive,required"`
	Suffixes          []string    `koanf:"suffixes" validate:"dive,required"`
	HighValuePrefixes []string    `koanf:"high_value_prefixes" validate:"dive,required"`
	HighValueSuffixes []string    `koanf:"high_value_suffixes" validate:"dive,required"`
	Competitors       []string    `koanf:"competitors" validate:"dive,required"`
	Variations        []Variation `koanf:"variations" validate:"dive"`
	Cutoffs           Cutoffs     `koanf:"cutoffs"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their configuration key rather than the Go name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Default returns the compiled-in catalog. The returned lists are copies and
// may be modified by the caller.
func Default() *Catalog {
	variations := make([]Variation, len(defaultVariations))
	for i, v := range defaultVariations {
		variations[i] = Variation{Service: v.Service, Variants: slices.Clone(v.Variants)}
	}

	return &Catalog{
		Brand:             DefaultBrand,
		Market:            DefaultMarket,
		Services:          slices.Clone(defaultServices),
		Locations:         slices.Clone(defaultLocations),
		Prefixes:          slices.Clone(defaultPrefixes),
		Suffixes:          slices.Clone(defaultSuffixes),
		HighValuePrefixes: slices.Clone(defaultHighValuePrefixes),
		HighValueSuffixes: slices.Clone(defaultHighValueSuffixes),
		Competitors:       slices.Clone(defaultCompetitors),
		Variations:        variations,
		Cutoffs: Cutoffs{
			HighValue:  DefaultHighValueCutoff,
			Competitor: DefaultCompetitorCutoff,
			Variation:  DefaultVariationCutoff,
		},
	}
}

// Validate checks that every list can produce keywords.
// Failures are reported as *core.DegenerateInputError.
func (c *Catalog) Validate() error {
	if c == nil {
		return &core.DegenerateInputError{Field: "catalog", Reason: "is nil"}
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	return &core.DegenerateInputError{
		Field:  formatFieldPath(e.Namespace()),
		Reason: formatReason(e),
	}
}

// TopLocations returns the first n locations, clamped to the list length.
func (c *Catalog) TopLocations(n int) []string {
	return Top(c.Locations, n)
}

// Top returns the first n entries of list, clamped to [0, len(list)].
func Top(list []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(list) {
		n = len(list)
	}
	return list[:n]
}

// formatFieldPath converts "Catalog.variations[2].service" to "variations[2].service".
func formatFieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func formatReason(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s entries", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	default:
		return fmt.Sprintf("failed validation: %s", e.Tag())
	}
}
