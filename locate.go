// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import "strings"

// Microsoft Office stores media below a folder called "media", LibreOffice
// below "Pictures". The match is a plain substring match on the entry path.
var mediaContainers = []string{"media", "Pictures"}

// extensionEmbeddedObject is the extension of the preview images Microsoft Office
// adds for embedded objects. They are not media.
const extensionEmbeddedObject = "emf"

// Locate returns the media entries of an archive's entry listing. The relative
// order of names is preserved. An entry is a media entry if its path contains
// a dot, contains "media" or "Pictures" and does not end with the extension
// of an embedded object preview.
//
// Locate never fails, if no entry qualifies an empty slice is returned.
func Locate(names []string) []string {
	media := make([]string, 0)
	for _, name := range names {
		if isMediaEntry(name) {
			media = append(media, name)
		}
	}
	return media
}

// isMediaEntry reports whether name is the path of a media entry.
func isMediaEntry(name string) bool {
	// entries without extension are never media
	if !strings.Contains(name, ".") {
		return false
	}
	// a trailing dot leaves no extension
	switch extensionOf(name) {
	case "", extensionEmbeddedObject:
		return false
	}
	for _, container := range mediaContainers {
		if strings.Contains(name, container) {
			return true
		}
	}
	return false
}
