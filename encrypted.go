// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import (
	"bytes"
	"io"
	"os"

	"github.com/richardlehane/mscfb"
)

// magicBytesCompoundFile contains the magic bytes of an OLE compound file.
// reference: https://learn.microsoft.com/en-us/openspecs/windows_protocols/ms-cfb
var magicBytesCompoundFile = [][]byte{
	{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1},
}

// streamEncryptedPackage is the stream that holds the encrypted ZIP archive of
// a password protected OOXML document.
const streamEncryptedPackage = "EncryptedPackage"

// matchesMagicBytes checks if the bytes in data at offset match one of the magic bytes.
func matchesMagicBytes(data []byte, offset int, magicBytes [][]byte) bool {
	for _, mb := range magicBytes {
		// check if header is long enough
		if offset+len(mb) > len(data) {
			continue
		}

		// check for byte match
		if bytes.Equal(mb, data[offset:offset+len(mb)]) {
			return true
		}
	}
	return false
}

// isEncryptedPackage returns true if the file at path is an OLE compound file
// with an encrypted package stream. Office stores password protected documents
// this way, keeping the original extension.
func isEncryptedPackage(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, len(magicBytesCompoundFile[0]))
	if _, err := io.ReadFull(f, header); err != nil {
		return false
	}
	if !matchesMagicBytes(header, 0, magicBytesCompoundFile) {
		return false
	}

	doc, err := mscfb.New(f)
	if err != nil {
		return false
	}
	for {
		// io.EOF ends the directory listing
		entry, err := doc.Next()
		if err != nil {
			return false
		}
		if entry.Name == streamEncryptedPackage {
			return true
		}
	}
}
