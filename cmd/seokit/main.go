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


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/seokit"
	"github.com/poiesic/seokit/config"
	"github.com/poiesic/seokit/core"
	"github.com/poiesic/seokit/locations"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "seokit",
		Usage: "SEO keyword generation for the Stylr SA booking site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "keywords",
				Usage:  "Generate the keyword list and print its analysis",
				Action: keywordsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Keyword list file, overwritten on every run",
						Value:   config.DefaultOutput,
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "YAML file overriding settings and catalog lists",
					},
					&cli.IntFlag{
						Name:  "progress-interval",
						Usage: "Print progress every N combinations",
						Value: config.DefaultProgressInterval,
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB run catalog directory (optional)",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Analysis worker pool size (0 = number of CPUs)",
					},
				},
			},
			{
				Name:   "locations",
				Usage:  "List cities per province for the front-end location data",
				Action: locationsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Also render city entries as yaml or json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "File for rendered entries (default stdout)",
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Entry description template with {city} and {province}",
						Value: locations.DefaultDescriptionTemplate,
					},
				},
			},
			{
				Name:   "history",
				Usage:  "List runs recorded in the run catalog",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB run catalog directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "keyword",
						Aliases: []string{"k"},
						Usage:   "Show when this keyword was first and last generated",
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Write every keyword in the run catalog to a file",
				Action: exportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB run catalog directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Keyword list file",
						Value:   config.DefaultOutput,
					},
					&cli.StringFlag{
						Name:  "run",
						Usage: "Only export keywords first seen in this run",
					},
				},
			},
		},
	}
}

// loadConfig loads the config file and environment, then applies flags
// that were given explicitly.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("progress-interval") {
		cfg.ProgressInterval = c.Int("progress-interval")
	}
	if c.IsSet("db") {
		cfg.DB = c.String("db")
	}
	if c.IsSet("pool-size") {
		cfg.PoolSize = c.Int("pool-size")
	}
	return cfg, nil
}

func keywordsCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	job, err := seokit.NewJob(cfg, seokit.WithOutput(c.App.Writer))
	if err != nil {
		return err
	}

	if _, err := job.Run(c.Context); err != nil {
		return fmt.Errorf("keyword generation failed: %w", err)
	}
	return nil
}

func locationsCommand(c *cli.Context) error {
	provinces := locations.Provinces()
	locations.Report(c.App.Writer, provinces)

	format := c.String("format")
	if format == "" {
		return nil
	}

	entries := locations.Entries(provinces, c.String("description"))

	if path := c.String("output"); path != "" {
		if err := writeEntriesFile(path, entries, format); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(c.App.Writer)
		if err := locations.WriteEntries(c.App.Writer, entries, format); err != nil {
			return err
		}
	}
	slog.Info("city entries rendered", "count", len(entries), "format", format)
	return nil
}

// writeEntriesFile renders entries into the file at path. A failed close is
// reported like a failed write.
func writeEntriesFile(path string, entries []core.CityEntry, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create entries file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close entries file: %w", closeErr)
		}
	}()

	return locations.WriteEntries(f, entries, format)
}

func historyCommand(c *cli.Context) error {
	rc, err := seokit.OpenRunCatalog(c.String("db"))
	if err != nil {
		return err
	}
	defer rc.Close()

	if text := c.String("keyword"); text != "" {
		record, err := rc.Keywords().GetKeyword(c.Context, text)
		if err != nil {
			return fmt.Errorf("keyword %q: %w", text, err)
		}
		seokit.WriteKeyword(c.App.Writer, record)
		return nil
	}

	runs, err := rc.Runs().ListRuns(c.Context)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	seokit.WriteHistory(c.App.Writer, runs)

	count, err := rc.Keywords().CountKeywords(c.Context)
	if err != nil {
		return fmt.Errorf("failed to count keywords: %w", err)
	}
	seokit.WriteCatalogTotal(c.App.Writer, count)
	return nil
}

func exportCommand(c *cli.Context) error {
	rc, err := seokit.OpenRunCatalog(c.String("db"))
	if err != nil {
		return err
	}
	defer rc.Close()

	output := c.String("output")
	n, err := rc.Export(c.Context, output, c.String("run"))
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Exported %d keywords to %s\n", n, output)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
