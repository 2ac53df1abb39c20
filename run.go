// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Source describes the inputs of an extraction, either a single file or an
// ordered collection of files. Use [FromFile] or [FromFiles] to create it.
type Source struct {
	paths []string
}

// FromFile creates a [Source] for a single file.
func FromFile(path string) Source {
	return Source{paths: []string{path}}
}

// FromFiles creates a [Source] for the files in paths. The order is preserved.
func FromFiles(paths ...string) Source {
	return Source{paths: append([]string(nil), paths...)}
}

// Paths returns the inputs of s in order.
func (s Source) Paths() []string {
	return s.paths
}

// OutputFolder returns the folder for the media of input below dst. The folder is
// named like the input file.
func OutputFolder(dst string, input string) string {
	return filepath.Join(dst, filepath.Base(input))
}

// Extract extracts the media of all inputs of src to per-document folders below dst.
// The inputs are processed in order. If reporting is enabled in cfg, the summary of
// every successfully processed input is written to the report writer.
//
// By default the first failing input ends the extraction and its error is returned.
// If [Config.ContinueOnError] is true, the remaining inputs are processed and the
// errors of all failed inputs are returned together.
func Extract(ctx context.Context, t Target, src Source, dst string, cfg *Config) error {
	var result *multierror.Error
	for _, path := range src.Paths() {
		summary, err := ExtractFile(ctx, t, path, dst, cfg)
		if err != nil {
			if !cfg.ContinueOnError() {
				return err
			}
			cfg.Logger().Warn("skipping input", "input", path, "error", err)
			result = multierror.Append(result, errors.Wrapf(err, "%s", path))
			continue
		}

		if cfg.Report() {
			if err := writeReport(cfg.ReportWriter(), summary); err != nil {
				return fmt.Errorf("cannot write report: %w", err)
			}
		}
	}
	return result.ErrorOrNil()
}

// ExtractFile validates the input at path, locates its media entries and extracts them
// to [OutputFolder](dst, path). It returns the type-frequency summary of the input.
func ExtractFile(ctx context.Context, t Target, path string, dst string, cfg *Config) (Summary, error) {
	// prepare telemetry data collection and emit
	td := &TelemetryData{Input: path}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureExtractionDuration(td, now())

	cfg.Logger().Info("extracting media", "input", path)

	if err := Validate(path); err != nil {
		return nil, handleError(cfg, td, "invalid input", err)
	}

	// check input size before the archive is read
	info, err := os.Stat(path)
	if err != nil {
		return nil, handleError(cfg, td, "cannot stat input", err)
	}
	td.InputSize = info.Size()
	if err := cfg.CheckInputSize(info.Size()); err != nil {
		return nil, handleError(cfg, td, "cannot extract input", err)
	}

	archive, err := openArchive(path)
	if err != nil {
		return nil, handleError(cfg, td, "cannot open archive", notAnArchive(path, err))
	}
	defer archive.Close()

	names := entryNames(&archive.Reader)
	media := Locate(names)
	td.ArchiveEntries = int64(len(names))
	td.MediaEntries = int64(len(media))
	cfg.Logger().Debug("located media entries", "input", path, "entries", len(names), "media", len(media))

	summary, err := extractMedia(ctx, t, media, &archive.Reader, OutputFolder(dst, path), cfg, td)
	if err != nil {
		return nil, handleError(cfg, td, "cannot extract media", err)
	}
	td.Summary = summary

	cfg.Logger().Info("extracted media", "input", path, "files", summary.Total())
	return summary, nil
}

// handleError captures err in the telemetry data, logs it and returns it unchanged.
func handleError(cfg *Config, td *TelemetryData, msg string, err error) error {
	td.ExtractionErrors++
	td.LastExtractionError = err
	cfg.Logger().Error(msg, "input", td.Input, "error", err)
	return err
}
