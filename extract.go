// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ExtractAll writes the media entries of archive to outputFolder on t and returns
// the type-frequency summary of the written files. entries must be names of
// archive, usually the result of [Locate].
//
// If entries is empty, nothing is read or written and an empty [Summary] is
// returned. Otherwise outputFolder is created if it does not exist and every
// entry is written, in order, to a file named like the last path segment of the
// entry. The first failing entry ends the extraction with an error.
func ExtractAll(ctx context.Context, t Target, entries []string, archive *zip.Reader, outputFolder string, cfg *Config) (Summary, error) {
	return extractMedia(ctx, t, entries, archive, outputFolder, cfg, &TelemetryData{})
}

// extractMedia implements [ExtractAll] and captures telemetry data in td.
func extractMedia(ctx context.Context, t Target, entries []string, archive *zip.Reader, outputFolder string, cfg *Config, td *TelemetryData) (Summary, error) {
	if len(entries) == 0 {
		return Summary{}, nil
	}

	// check the number of media files before anything is written
	if err := cfg.CheckMaxFiles(int64(len(entries))); err != nil {
		return nil, fmt.Errorf("%d media files: %w", len(entries), err)
	}

	if err := t.CreateDir(outputFolder, cfg.CustomCreateDirMode()); err != nil {
		return nil, fmt.Errorf("cannot create output folder: %w", err)
	}

	index := entryIndex(archive)
	counts := make(map[string]int)
	for _, name := range entries {

		// check if context is canceled
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("cannot find entry %s: %w", name, fs.ErrNotExist)
		}

		base, err := mediaFileName(name)
		if err != nil {
			return nil, err
		}

		// check if the announced size fits into the remaining budget
		if err := cfg.CheckExtractionSize(td.ExtractionSize + int64(f.UncompressedSize64)); err != nil {
			return nil, fmt.Errorf("cannot extract %s: %w", name, err)
		}

		n, err := extractEntry(t, f, filepath.Join(outputFolder, base), cfg, td.ExtractionSize)
		td.ExtractionSize += n
		if err != nil {
			return nil, err
		}
		td.ExtractedFiles++
		counts[extensionOf(base)]++
		cfg.Logger().Debug("extracted media file", "entry", name, "path", filepath.Join(outputFolder, base), "size", n)
	}

	return newSummary(counts), nil
}

// extractEntry copies the content of f to path. written is the number of bytes
// already extracted from the same input, it reduces the size limit of the file.
func extractEntry(t Target, f *zip.File, path string, cfg *Config, written int64) (int64, error) {
	rc, err := f.Open()
	if err != nil {
		return 0, fmt.Errorf("cannot open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	// the announced size can be wrong, so the write is limited as well
	maxSize := int64(-1)
	if cfg.MaxExtractionSize() >= 0 {
		maxSize = cfg.MaxExtractionSize() - written
	}

	n, err := t.CreateFile(path, rc, cfg.CustomFileMode(), cfg.Overwrite(), maxSize)
	if err != nil {
		if maxSize >= 0 && errors.Is(err, io.ErrShortWrite) {
			err = ErrMaxExtractionSizeExceeded
		}
		return n, fmt.Errorf("cannot extract %s: %w", f.Name, err)
	}
	return n, nil
}

// mediaFileName returns the last path segment of the entry name. Names that
// do not end with a usable file name are rejected.
func mediaFileName(name string) (string, error) {
	base := name[strings.LastIndex(name, "/")+1:]
	switch base {
	case "", ".", "..":
		return "", fmt.Errorf("entry %q: %w", name, ErrInvalidEntryName)
	}
	return base, nil
}
