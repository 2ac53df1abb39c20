// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import (
	"sort"
	"strings"
)

// Family is the application family of a supported document format.
type Family string

const (
	FamilyWord         Family = "word"         // Microsoft Word
	FamilyExcel        Family = "excel"        // Microsoft Excel
	FamilyPowerPoint   Family = "powerpoint"   // Microsoft PowerPoint
	FamilyOpenDocument Family = "opendocument" // LibreOffice Writer, Calc, Impress and Draw
)

// supportedFormats maps the extensions of the ZIP based Office formats to their family.
var supportedFormats = map[string]Family{
	"docx": FamilyWord,
	"docm": FamilyWord,
	"dotx": FamilyWord,
	"dotm": FamilyWord,
	"xlsx": FamilyExcel,
	"xlsm": FamilyExcel,
	"xltx": FamilyExcel,
	"xltm": FamilyExcel,
	"xlsb": FamilyExcel,
	"pptx": FamilyPowerPoint,
	"pptm": FamilyPowerPoint,
	"potm": FamilyPowerPoint,
	"potx": FamilyPowerPoint,
	"ppsx": FamilyPowerPoint,
	"ppsm": FamilyPowerPoint,
	"odt":  FamilyOpenDocument,
	"ott":  FamilyOpenDocument,
	"ods":  FamilyOpenDocument,
	"ots":  FamilyOpenDocument,
	"odp":  FamilyOpenDocument,
	"otp":  FamilyOpenDocument,
	"odg":  FamilyOpenDocument,
}

// legacyFormats are the binary Office 97-2003 formats. They are not ZIP based.
var legacyFormats = map[string]struct{}{
	"doc": {},
	"dot": {},
	"ppt": {},
	"pot": {},
	"xls": {},
	"xlt": {},
}

// FamilyOf returns the family of the format with extension ext. The second
// return value is false if the extension is not supported. Extensions are
// compared case-sensitively, "DOCX" is not supported.
func FamilyOf(ext string) (Family, bool) {
	f, ok := supportedFormats[ext]
	return f, ok
}

// IsLegacyFormat returns true if ext is one of the binary Office 97-2003 formats.
func IsLegacyFormat(ext string) bool {
	_, ok := legacyFormats[ext]
	return ok
}

// SupportedExtensions returns the extensions of all supported formats in
// alphabetical order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedFormats))
	for ext := range supportedFormats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// extensionOf returns the part of name after the last dot. If name does not
// contain a dot, name is returned unchanged.
func extensionOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
