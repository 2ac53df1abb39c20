// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config provides a configuration struct and options to adjust the configuration.
//
// The configuration struct holds all configuration options for the extraction process.
// The configuration options can be adjusted using the option pattern style.
//
// The default configuration stops at the first failing input and limits the
// input size, the number of media files and the extraction size per input to
// prevent exhaustion.
type Config struct {
	// continueOnError decides if the remaining inputs are processed after an input failed
	continueOnError bool

	// customCreateDirMode is the file mode for created output folders (respecting umask)
	customCreateDirMode fs.FileMode

	// customFileMode is the file mode for extracted media files (respecting umask)
	customFileMode fs.FileMode

	// logger stream for extraction
	logger logger

	// maxExtractionSize is the maximum size of all media files extracted from one input.
	// Set value to -1 to disable the check.
	maxExtractionSize int64

	// maxFiles is the maximum number of media files in one input.
	// Set value to -1 to disable the check.
	maxFiles int64

	// maxInputSize is the maximum size of an input.
	// Set value to -1 to disable the check.
	maxInputSize int64

	// overwrite decides if existing media files in the output folder are replaced
	overwrite bool

	// report enables the summary report after each input
	report bool

	// reportWriter receives the summary report
	reportWriter io.Writer

	// telemetryHook is a function to consume telemetry data after an input was processed
	// Important: do not adjust this value after extraction started
	telemetryHook TelemetryHook
}

// ContinueOnError returns true if the remaining inputs should be processed after
// an input failed.
func (c *Config) ContinueOnError() bool {
	return c.continueOnError
}

// CheckMaxFiles checks if counter exceeds the configured maximum. If the maximum is exceeded,
// a [ErrMaxFilesExceeded] error is returned.
func (c *Config) CheckMaxFiles(counter int64) error {

	// check if disabled
	if c.MaxFiles() == -1 {
		return nil
	}

	// check value
	if counter > c.MaxFiles() {
		return ErrMaxFilesExceeded
	}
	return nil
}

// CheckExtractionSize checks if fileSize exceeds configured maximum. If the maximum is exceeded,
// a [ErrMaxExtractionSizeExceeded] error is returned.
func (c *Config) CheckExtractionSize(fileSize int64) error {

	// check if disabled
	if c.MaxExtractionSize() == -1 {
		return nil
	}

	// check value
	if fileSize > c.MaxExtractionSize() {
		return ErrMaxExtractionSizeExceeded
	}
	return nil
}

// CheckInputSize checks if inputSize exceeds the configured maximum. If the maximum is exceeded,
// a [ErrMaxInputSizeExceeded] error is returned.
func (c *Config) CheckInputSize(inputSize int64) error {
	if c.MaxInputSize() == -1 {
		return nil
	}
	if inputSize > c.MaxInputSize() {
		return ErrMaxInputSizeExceeded
	}
	return nil
}

// CustomCreateDirMode returns the file mode for created output folders. (respecting umask)
func (c *Config) CustomCreateDirMode() fs.FileMode {
	return c.customCreateDirMode
}

// CustomFileMode returns the file mode for extracted media files. (respecting umask)
func (c *Config) CustomFileMode() fs.FileMode {
	return c.customFileMode
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxExtractionSize returns the maximum size of all media files extracted from one input.
func (c *Config) MaxExtractionSize() int64 {
	return c.maxExtractionSize
}

// MaxFiles returns the maximum number of media files in one input.
func (c *Config) MaxFiles() int64 {
	return c.maxFiles
}

// MaxInputSize returns the maximum size of an input.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// Overwrite returns true if existing media files should be overwritten.
func (c *Config) Overwrite() bool {
	return c.overwrite
}

// Report returns true if a summary should be reported after each input.
func (c *Config) Report() bool {
	return c.report
}

// ReportWriter returns the writer for the summary report.
func (c *Config) ReportWriter() io.Writer {
	if c.reportWriter == nil {
		return os.Stdout
	}
	return c.reportWriter
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return defaultTelemetryHook
	}
	return c.telemetryHook
}

const (
	defaultContinueOnError     = false         // stop on the first failing input
	defaultCustomCreateDirMode = 0750          // default directory permissions rwxr-x---
	defaultCustomFileMode      = 0640          // default file permissions rw-r-----
	defaultMaxFiles            = 100000        // 100k media files
	defaultMaxExtractionSize   = 1 << (10 * 3) // 1 Gb
	defaultMaxInputSize        = 1 << (10 * 3) // 1 Gb
	defaultOverwrite           = true          // replace media files with the same name
	defaultReport              = true          // print a summary per input
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		continueOnError:     defaultContinueOnError,
		customCreateDirMode: defaultCustomCreateDirMode,
		customFileMode:      defaultCustomFileMode,
		logger:              defaultLogger,
		maxExtractionSize:   defaultMaxExtractionSize,
		maxFiles:            defaultMaxFiles,
		maxInputSize:        defaultMaxInputSize,
		overwrite:           defaultOverwrite,
		report:              defaultReport,
		reportWriter:        os.Stdout,
		telemetryHook:       defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithContinueOnError options pattern function to continue with the remaining inputs
// after an input failed. The failures are logged and returned together once all inputs
// are processed. If set to false, the extraction stops at the first failing input.
func WithContinueOnError(yes bool) ConfigOption {
	return func(c *Config) {
		c.continueOnError = yes
	}
}

// WithCustomCreateDirMode options pattern function to set the file mode
// for created output folders. (respecting umask)
func WithCustomCreateDirMode(mode fs.FileMode) ConfigOption {
	return func(c *Config) {
		c.customCreateDirMode = mode
	}
}

// WithCustomFileMode options pattern function to set the file mode for
// extracted media files. (respecting umask)
func WithCustomFileMode(mode fs.FileMode) ConfigOption {
	return func(c *Config) {
		c.customFileMode = mode
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMaxExtractionSize options pattern function to set the maximum size of all media
// files extracted from one input. (-1 to disable check)
func WithMaxExtractionSize(maxExtractionSize int64) ConfigOption {
	return func(c *Config) {
		c.maxExtractionSize = maxExtractionSize
	}
}

// WithMaxFiles options pattern function to set the maximum number of media files
// in one input. (-1 to disable check)
func WithMaxFiles(maxFiles int64) ConfigOption {
	return func(c *Config) {
		c.maxFiles = maxFiles
	}
}

// WithMaxInputSize options pattern function to set MaxInputSize for an input file. (-1 to disable check)
func WithMaxInputSize(maxInputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = maxInputSize
	}
}

// WithOverwrite options pattern function specify if existing media files should be overwritten.
func WithOverwrite(enable bool) ConfigOption {
	return func(c *Config) {
		c.overwrite = enable
	}
}

// WithReport options pattern function to enable/disable the summary report.
func WithReport(enable bool) ConfigOption {
	return func(c *Config) {
		c.report = enable
	}
}

// WithReportWriter options pattern function to set the writer for the summary report.
func WithReportWriter(w io.Writer) ConfigOption {
	return func(c *Config) {
		c.reportWriter = w
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook], which is called
// after each input was processed.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}
