// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// zipEntry is a file that is added to a test archive
type zipEntry struct {
	name    string
	content []byte
	method  uint16
}

// createTestArchive creates a zip archive with entries at dstDir/name and returns its path.
func createTestArchive(t *testing.T, dstDir string, name string, entries ...zipEntry) string {
	t.Helper()
	path := filepath.Join(dstDir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("cannot create archive: %s", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zstd.ZipMethodWinZip, zstd.ZipCompressor())
	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: e.method})
		if err != nil {
			t.Fatalf("cannot create entry %s: %s", e.name, err)
		}
		if _, err := w.Write(e.content); err != nil {
			t.Fatalf("cannot write entry %s: %s", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("cannot close archive: %s", err)
	}
	return path
}

// createTestFile creates a file with content at dstDir/name and returns its path.
func createTestFile(t *testing.T, dstDir string, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dstDir, name)
	if err := os.WriteFile(path, content, 0640); err != nil {
		t.Fatalf("cannot create file: %s", err)
	}
	return path
}

// wordDocument returns the entries of a small word document with three images
// and an embedded object preview.
func wordDocument() []zipEntry {
	return []zipEntry{
		{name: "[Content_Types].xml", content: []byte("<Types/>"), method: zip.Deflate},
		{name: "word/document.xml", content: []byte("<w:document/>"), method: zip.Deflate},
		{name: "word/media/image1.jpeg", content: []byte("jpeg-1"), method: zip.Store},
		{name: "word/media/image2.png", content: []byte("png-2"), method: zip.Deflate},
		{name: "word/media/image3.jpeg", content: []byte("jpeg-3"), method: zip.Deflate},
		{name: "word/media/image4.emf", content: []byte("emf-4"), method: zip.Deflate},
	}
}

// odtDocument returns the entries of a small LibreOffice document with one image.
func odtDocument() []zipEntry {
	return []zipEntry{
		{name: "mimetype", content: []byte("application/vnd.oasis.opendocument.text"), method: zip.Store},
		{name: "content.xml", content: []byte("<office:document-content/>"), method: zip.Deflate},
		{name: "Pictures/100000000000.jpg", content: []byte("jpg-1"), method: zip.Deflate},
	}
}
