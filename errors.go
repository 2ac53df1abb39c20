// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned if the extension of an input is a legacy
	// binary Office format or not a known ZIP based Office format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNotAnArchive is returned if an input with a supported extension cannot
	// be opened as a ZIP archive.
	ErrNotAnArchive = errors.New("not a valid archive")

	// ErrMaxFilesExceeded is returned if an input holds more media entries than allowed.
	ErrMaxFilesExceeded = errors.New("maximum files exceeded")

	// ErrMaxExtractionSizeExceeded is returned if the media of an input exceeds the
	// allowed extraction size.
	ErrMaxExtractionSizeExceeded = errors.New("maximum extraction size exceeded")

	// ErrMaxInputSizeExceeded is returned if an input is larger than allowed.
	ErrMaxInputSizeExceeded = errors.New("maximum input size exceeded")

	// ErrInvalidEntryName is returned if a media entry has no usable file name.
	ErrInvalidEntryName = errors.New("invalid entry name")
)

// UnsupportedFormatError describes an input that was rejected because of its
// extension. Legacy is set for the pre-XML binary Office formats.
type UnsupportedFormatError struct {
	Path      string
	Extension string
	Legacy    bool
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	if e.Legacy {
		return fmt.Sprintf("invalid file %s: legacy binary Office files (.%s) are not supported", e.Path, e.Extension)
	}
	return fmt.Sprintf("invalid file %s: file type .%s is not supported", e.Path, e.Extension)
}

// Is makes the error match [ErrUnsupportedFormat].
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// NotAnArchiveError describes an input with a supported extension that is not a
// readable ZIP archive. Encrypted is set if the input is a password protected
// document, which is stored as an OLE compound file instead of a ZIP archive.
type NotAnArchiveError struct {
	Path      string
	Encrypted bool
	Err       error
}

// Error implements the error interface.
func (e *NotAnArchiveError) Error() string {
	if e.Encrypted {
		return fmt.Sprintf("file %s is an encrypted document, password protected files are not supported", e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("file %s is not a valid zip archive, maybe the file is corrupted: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("file %s is not a valid zip archive, maybe the file is corrupted", e.Path)
}

// Is makes the error match [ErrNotAnArchive].
func (e *NotAnArchiveError) Is(target error) bool {
	return target == ErrNotAnArchive
}

// Unwrap returns the error reported while opening the archive.
func (e *NotAnArchiveError) Unwrap() error {
	return e.Err
}
