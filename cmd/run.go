// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	officemedia "github.com/hashicorp/go-officemedia"
)

// CLI are the cli parameters for the officeextract binary
type CLI struct {
	Inputs            []string         `arg:"" name:"input" help:"Office documents to extract media from."`
	ContinueOnError   bool             `short:"C" help:"Continue with the next document if a document fails."`
	MaxFiles          int64            `optional:"" default:"100000" help:"Maximum media files per document. (disable check: -1)"`
	MaxExtractionSize int64            `optional:"" default:"1073741824" help:"Maximum size of the media per document (in bytes). (disable check: -1)"`
	MaxInputSize      int64            `optional:"" default:"1073741824" help:"Maximum size of a document (in bytes). (disable check: -1)"`
	Metrics           bool             `short:"M" optional:"" default:"false" help:"Print metrics to log after each document."`
	NoOverwrite       bool             `help:"Fail instead of overwriting existing media files."`
	Output            string           `short:"o" default:"." help:"Output directory for the per-document media folders."`
	Quiet             bool             `short:"q" help:"Do not print a summary per document."`
	Verbose           bool             `short:"v" optional:"" help:"Verbose logging."`
	Version           kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
}

// Run the entrypoint into officeextract as a cli tool
func Run(version, commit, date string) {
	var cli CLI
	kong.Parse(&cli,
		kong.Description(fmt.Sprintf("Extract images, audio and video from Office documents (%s).", strings.Join(officemedia.SupportedExtensions(), ", "))),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	if err := run(context.Background(), cli, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run extracts the media of the documents in cli. The summary is written to stdout,
// logs are written to stderr.
func run(ctx context.Context, cli CLI, stdout io.Writer, stderr io.Writer) error {
	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	} else if cli.Metrics {
		logLevel = slog.LevelInfo
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// setup telemetry hook
	telemetryToLog := func(ctx context.Context, td *officemedia.TelemetryData) {
		if cli.Metrics {
			logger.Info("extraction finished", "telemetry", td)
		}
	}

	// process cli params
	cfg := officemedia.NewConfig(
		officemedia.WithContinueOnError(cli.ContinueOnError),
		officemedia.WithLogger(logger),
		officemedia.WithMaxExtractionSize(cli.MaxExtractionSize),
		officemedia.WithMaxFiles(cli.MaxFiles),
		officemedia.WithMaxInputSize(cli.MaxInputSize),
		officemedia.WithOverwrite(!cli.NoOverwrite),
		officemedia.WithReport(!cli.Quiet),
		officemedia.WithReportWriter(stdout),
		officemedia.WithTelemetryHook(telemetryToLog),
	)

	// extract media
	src := officemedia.FromFiles(cli.Inputs...)
	if err := officemedia.Extract(ctx, officemedia.NewTargetDisk(), src, cli.Output, cfg); err != nil {
		fmt.Fprintf(stderr, "error during extraction: %s\n", err)
		return err
	}
	return nil
}
