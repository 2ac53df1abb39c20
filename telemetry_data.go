// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import (
	"context"
	"encoding/json"
	"time"
)

// TelemetryData holds all telemetry data of the extraction of one input.
type TelemetryData struct {
	// ArchiveEntries is the number of entries in the archive
	ArchiveEntries int64 `json:"archive_entries"`

	// ExtractedFiles is the number of extracted media files
	ExtractedFiles int64 `json:"extracted_files"`

	// ExtractionDuration is the time it took to process the input
	ExtractionDuration time.Duration `json:"extraction_duration"`

	// ExtractionErrors is the number of errors during extraction
	ExtractionErrors int64 `json:"extraction_errors"`

	// ExtractionSize is the size of the extracted media files
	ExtractionSize int64 `json:"extraction_size"`

	// Input is the path of the input
	Input string `json:"input"`

	// InputSize is the size of the input
	InputSize int64 `json:"input_size"`

	// LastExtractionError is the last error during extraction
	LastExtractionError error `json:"last_extraction_error"`

	// MediaEntries is the number of located media entries
	MediaEntries int64 `json:"media_entries"`

	// Summary is the type-frequency summary of the extracted media files
	Summary Summary `json:"summary"`
}

// String returns a string representation of [TelemetryData].
func (m TelemetryData) String() string {
	b, _ := json.Marshal(m)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (m TelemetryData) MarshalJSON() ([]byte, error) {
	var lastError string
	if m.LastExtractionError != nil {
		lastError = m.LastExtractionError.Error()
	}

	type Alias TelemetryData
	return json.Marshal(&struct {
		LastExtractionError string `json:"last_extraction_error"`
		*Alias
	}{
		LastExtractionError: lastError,
		Alias:               (*Alias)(&m),
	})
}

// TelemetryHook is a function type that performs operations on [TelemetryData]
// after an input has been processed, which can be used to submit the [TelemetryData]
// to a telemetry service, for example.
type TelemetryHook func(context.Context, *TelemetryData)

// now is a function point that returns the current time. It is used in the tests
// to set a fixed time.
var now = time.Now

// captureExtractionDuration ensures that the extraction duration is captured
func captureExtractionDuration(td *TelemetryData, start time.Time) {
	td.ExtractionDuration = now().Sub(start)
}
