package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/mtovey/docindex/internal"
	pkgconfig "github.com/mtovey/docindex/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	err := pkgconfig.Load(configPath, cfg)
	if err == nil {
		return cfg, nil
	}
	// Defaults alone are a valid configuration when no file was given
	// explicitly and none exists at the default location.
	if errors.Is(err, os.ErrNotExist) && !cmd.IsSet("config") {
		return cfg, nil
	}
	return nil, fmt.Errorf("failed to parse config: %w", err)
}

func runIndex(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.RunIndex(ctx, internal.WithConfig(cfg))
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Bool("mcp") {
		return internal.ServeMCP(ctx, internal.WithConfig(cfg))
	}
	return internal.Serve(ctx, internal.WithConfig(cfg))
}

func runAcronyms(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.RunAcronyms(ctx, cmd.Bool("recursive"), internal.WithConfig(cfg))
}

func main() {
	cmd := &cli.Command{
		Name:  "docindex",
		Usage: "Markdown documentation indexer: TOC blocks, INDEX.md, full-text search, and acronym tracking",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Rewrite TOC blocks and regenerate INDEX.md, then exit",
				Action: runIndex,
			},
			{
				Name:   "serve",
				Usage:  "Start the HTTP API, file watcher, and SSE stream",
				Action: runServe,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "mcp",
						Usage: "Serve MCP over stdio instead of HTTP",
					},
				},
			},
			{
				Name:   "acronyms",
				Usage:  "Scan for undocumented acronyms and append stubs to acronyms.md",
				Action: runAcronyms,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "recursive",
						Aliases: []string{"r"},
						Usage:   "Search recursively in subdirectories",
					},
				},
			},
		},
		DefaultCommand: "run",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
