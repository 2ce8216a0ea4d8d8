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


// Package config loads seokit settings and the keyword catalog using koanf.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/poiesic/seokit/catalog"
)

const (
	// DefaultOutput is the keyword file written relative to the working directory.
	DefaultOutput = "keyword_list.txt"

	// DefaultProgressInterval is the number of raw combinations between progress lines.
	DefaultProgressInterval = 10000

	// EnvPrefix is the prefix of environment variables that override settings.
	EnvPrefix = "SEOKIT_"
)

// Config is the root configuration structure.
type Config struct {
	// Output is the path of the keyword list file. Always overwritten.
	Output string `koanf:"output" validate:"required"`

	// ProgressInterval is how many raw combinations pass between progress
	// lines during the two largest rules.
	ProgressInterval int `koanf:"progress_interval" validate:"min=1"`

	// PoolSize is the analysis worker pool size. 0 selects a default
	// based on the number of CPUs.
	PoolSize int `koanf:"pool_size" validate:"min=0"`

	// ChunkSize is how many keywords each analysis task counts. 0 selects
	// the analysis default.
	ChunkSize int `koanf:"chunk_size" validate:"min=0"`

	// DB is an optional BadgerDB directory where runs are recorded.
	DB string `koanf:"db"`

	// Catalog holds the generator input lists.
	Catalog *catalog.Catalog `koanf:"-" validate:"-"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func defaults() map[string]any {
	return map[string]any{
		"output":            DefaultOutput,
		"progress_interval": DefaultProgressInterval,
		"pool_size":         0,
		"chunk_size":        0,
		"db":                "",
	}
}

// Default returns the configuration used when no file or environment is present.
func Default() *Config {
	return &Config{
		Output:           DefaultOutput,
		ProgressInterval: DefaultProgressInterval,
		Catalog:          catalog.Default(),
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (SEOKIT_ prefix)
//  2. The YAML file at path, if path is not empty
//  3. Default values and the compiled-in catalog
//
// Lists under the file's "catalog" key replace the compiled-in list of the
// same name; lists that are absent keep their defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cat, err := loadCatalog(k)
	if err != nil {
		return nil, err
	}
	cfg.Catalog = cat

	return &cfg, nil
}

// loadCatalog overlays catalog keys from k onto the compiled-in catalog.
func loadCatalog(k *koanf.Koanf) (*catalog.Catalog, error) {
	cat := catalog.Default()

	lists := map[string]*[]string{
		"catalog.services":            &cat.Services,
		"catalog.locations":           &cat.Locations,
		"catalog.prefixes":            &cat.Prefixes,
		"catalog.suffixes":            &cat.Suffixes,
		"catalog.high_value_prefixes": &cat.HighValuePrefixes,
		"catalog.high_value_suffixes": &cat.HighValueSuffixes,
		"catalog.competitors":         &cat.Competitors,
	}
	for key, dst := range lists {
		if k.Exists(key) {
			*dst = k.Strings(key)
		}
	}

	if k.Exists("catalog.brand") {
		cat.Brand = k.String("catalog.brand")
	}
	if k.Exists("catalog.market") {
		cat.Market = k.String("catalog.market")
	}

	if k.Exists("catalog.variations") {
		var variations []catalog.Variation
		if err := k.Unmarshal("catalog.variations", &variations); err != nil {
			return nil, fmt.Errorf("unmarshalling catalog variations: %w", err)
		}
		cat.Variations = variations
	}

	cutoffs := map[string]*int{
		"catalog.cutoffs.high_value": &cat.Cutoffs.HighValue,
		"catalog.cutoffs.competitor": &cat.Cutoffs.Competitor,
		"catalog.cutoffs.variation":  &cat.Cutoffs.Variation,
	}
	for key, dst := range cutoffs {
		if k.Exists(key) {
			*dst = k.Int(key)
		}
	}

	return cat, nil
}

// Validate validates the settings and the catalog.
// Catalog failures are returned as *core.DegenerateInputError.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return c.Catalog.Validate()
}

// formatValidationErrors converts validator errors to a readable format.
func formatValidationErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}
