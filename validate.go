// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

// Validate checks if the file at path can be processed. It must be called
// before the archive is opened for extraction.
//
// An [*UnsupportedFormatError] is returned if the extension is a legacy binary
// Office format or not a known ZIP based format. The extension must match
// exactly, "Report.DOCX" is rejected with the generic reason. A [*NotAnArchiveError] is
// returned if the file cannot be opened as a ZIP archive, e.g. because it is
// corrupted, truncated or encrypted.
func Validate(path string) error {
	ext := extensionOf(path)

	// binary formats are rejected before the generic check to explain the reason
	if IsLegacyFormat(ext) {
		return &UnsupportedFormatError{Path: path, Extension: ext, Legacy: true}
	}
	if _, ok := FamilyOf(ext); !ok {
		return &UnsupportedFormatError{Path: path, Extension: ext}
	}

	// ensure that the file is a readable zip archive
	archive, err := openArchive(path)
	if err != nil {
		return notAnArchive(path, err)
	}
	return archive.Close()
}

// notAnArchive creates a [*NotAnArchiveError] for path and checks if the file is
// an encrypted document.
func notAnArchive(path string, err error) error {
	return &NotAnArchiveError{
		Path:      path,
		Encrypted: isEncryptedPackage(path),
		Err:       err,
	}
}
