// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"

	officemedia "github.com/hashicorp/go-officemedia"
)

// openTestArchive opens the archive at path and closes it when the test ends.
func openTestArchive(t *testing.T, path string) *zip.Reader {
	t.Helper()
	rc, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("cannot open archive: %s", err)
	}
	t.Cleanup(func() { rc.Close() })
	return &rc.Reader
}

func TestExtractAllSummaryOrder(t *testing.T) {
	dir := t.TempDir()
	entries := []zipEntry{
		{name: "word/media/image1.jpeg", content: []byte("abcdefg"), method: zip.Deflate},
		{name: "word/media/image2.gif", content: []byte("abcdefg"), method: zip.Deflate},
		{name: "Pictures/image3.jpeg", content: []byte("abcdefg"), method: zip.Deflate},
		{name: "Pictures/image4.jpeg", content: []byte("abcdefg"), method: zip.Deflate},
		{name: "Pictures/video5.mp4", content: []byte("abcdefg"), method: zip.Store},
		{name: "Pictures/image6.png", content: []byte("abcdefg"), method: zip.Deflate},
		{name: "Pictures/image7.png", content: []byte("abcdefg"), method: zip.Deflate},
	}
	archive := openTestArchive(t, createTestArchive(t, dir, "Test.docx", entries...))

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}

	bfs := memfs.New()
	output := filepath.Join("AAAA", "Test.docx")
	summary, err := officemedia.ExtractAll(context.Background(), officemedia.NewTargetBilly(bfs), names, archive, output, officemedia.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := officemedia.Summary{
		{Extension: "jpeg", Count: 3},
		{Extension: "png", Count: 2},
		{Extension: "gif", Count: 1},
		{Extension: "mp4", Count: 1},
	}
	if !reflect.DeepEqual(summary, want) {
		t.Errorf("unexpected summary: got %v, want %v", summary, want)
	}

	// subdirectories of the archive are stripped
	infos, err := bfs.ReadDir(output)
	if err != nil {
		t.Fatalf("cannot read output folder: %s", err)
	}
	if len(infos) != 7 {
		t.Errorf("expected 7 files in the output folder, got %d", len(infos))
	}

	data, err := util.ReadFile(bfs, filepath.Join(output, "image1.jpeg"))
	if err != nil {
		t.Fatalf("cannot read extracted file: %s", err)
	}
	if string(data) != "abcdefg" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestExtractAllEmpty(t *testing.T) {
	dir := t.TempDir()
	archive := openTestArchive(t, createTestArchive(t, dir, "Test.docx", wordDocument()...))

	output := filepath.Join(dir, "out", "Test.docx")
	summary, err := officemedia.ExtractAll(context.Background(), officemedia.NewTargetDisk(), nil, archive, output, officemedia.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(summary) != 0 {
		t.Errorf("expected empty summary, got %v", summary)
	}

	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("output folder must not be created: %v", err)
	}
}

func TestExtractAllRoundTrip(t *testing.T) {
	dir := t.TempDir()
	payload := bytes.Repeat([]byte{0x00, 0xFF, 0x10, 0x0A, 0x0D}, 4096)
	entries := []zipEntry{
		{name: "ppt/media/stored.bin.png", content: payload, method: zip.Store},
		{name: "ppt/media/deflated.png", content: payload, method: zip.Deflate},
		{name: "ppt/media/zstd.png", content: payload, method: zstd.ZipMethodWinZip},
	}
	path := createTestArchive(t, dir, "Slides.pptx", entries...)
	archive := openTestArchive(t, path)
	archive.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())

	output := filepath.Join(dir, "out", "Slides.pptx")
	media := []string{entries[0].name, entries[1].name, entries[2].name}
	summary, err := officemedia.ExtractAll(context.Background(), officemedia.NewTargetDisk(), media, archive, output, officemedia.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := (officemedia.Summary{{Extension: "png", Count: 3}}); !reflect.DeepEqual(summary, want) {
		t.Errorf("unexpected summary: got %v, want %v", summary, want)
	}

	for _, name := range []string{"stored.bin.png", "deflated.png", "zstd.png"} {
		data, err := os.ReadFile(filepath.Join(output, name))
		if err != nil {
			t.Fatalf("cannot read %s: %s", name, err)
		}
		if !bytes.Equal(payload, data) {
			t.Errorf("content of %s differs", name)
		}
	}
}

func TestExtractAllOverwrite(t *testing.T) {
	dir := t.TempDir()
	archive := openTestArchive(t, createTestArchive(t, dir, "Test.docx", wordDocument()...))
	output := filepath.Join(dir, "out", "Test.docx")
	if err := os.MkdirAll(output, 0750); err != nil {
		t.Fatal(err)
	}
	existing := filepath.Join(output, "image1.jpeg")
	if err := os.WriteFile(existing, []byte("old content"), 0640); err != nil {
		t.Fatal(err)
	}

	media := []string{"word/media/image1.jpeg"}

	// overwriting is the default
	if _, err := officemedia.ExtractAll(context.Background(), officemedia.NewTargetDisk(), media, archive, output, officemedia.NewConfig()); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "jpeg-1" {
		t.Errorf("expected overwritten content, got %q", data)
	}

	// fail if overwriting is disabled
	cfg := officemedia.NewConfig(officemedia.WithOverwrite(false))
	_, err = officemedia.ExtractAll(context.Background(), officemedia.NewTargetDisk(), media, archive, output, cfg)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("expected %v, got %v", fs.ErrExist, err)
	}
}

func TestExtractAllLimits(t *testing.T) {
	cases := []struct {
		name      string
		opts      []officemedia.ConfigOption
		expectErr error
	}{
		{
			name:      "too many media files",
			opts:      []officemedia.ConfigOption{officemedia.WithMaxFiles(2)},
			expectErr: officemedia.ErrMaxFilesExceeded,
		},
		{
			name:      "extraction size exceeded",
			opts:      []officemedia.ConfigOption{officemedia.WithMaxExtractionSize(10)},
			expectErr: officemedia.ErrMaxExtractionSizeExceeded,
		},
		{
			name: "limits disabled",
			opts: []officemedia.ConfigOption{officemedia.WithMaxFiles(-1), officemedia.WithMaxExtractionSize(-1)},
		},
		{
			name: "limits exactly met",
			opts: []officemedia.ConfigOption{officemedia.WithMaxFiles(3), officemedia.WithMaxExtractionSize(17)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			archive := openTestArchive(t, createTestArchive(t, dir, "Test.docx", wordDocument()...))
			media := []string{"word/media/image1.jpeg", "word/media/image2.png", "word/media/image3.jpeg"}

			_, err := officemedia.ExtractAll(context.Background(), officemedia.NewTargetBilly(memfs.New()), media, archive, "out", officemedia.NewConfig(tc.opts...))
			if tc.expectErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %s", err)
				}
				return
			}
			if !errors.Is(err, tc.expectErr) {
				t.Errorf("expected %v, got %v", tc.expectErr, err)
			}
		})
	}
}

func TestExtractAllInvalidEntries(t *testing.T) {
	dir := t.TempDir()
	archive := openTestArchive(t, createTestArchive(t, dir, "Test.docx",
		zipEntry{name: "word/media.d/", method: zip.Store},
		zipEntry{name: "word/media/image1.png", content: []byte("png"), method: zip.Deflate},
	))

	cases := []struct {
		name      string
		media     []string
		expectErr error
	}{
		{name: "directory entry", media: []string{"word/media.d/"}, expectErr: officemedia.ErrInvalidEntryName},
		{name: "unknown entry", media: []string{"word/media/missing.png"}, expectErr: fs.ErrNotExist},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := officemedia.ExtractAll(context.Background(), officemedia.NewTargetBilly(memfs.New()), tc.media, archive, "out", officemedia.NewConfig())
			if !errors.Is(err, tc.expectErr) {
				t.Errorf("expected %v, got %v", tc.expectErr, err)
			}
		})
	}
}

func TestExtractAllCanceledContext(t *testing.T) {
	dir := t.TempDir()
	archive := openTestArchive(t, createTestArchive(t, dir, "Test.docx", wordDocument()...))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := officemedia.ExtractAll(ctx, officemedia.NewTargetBilly(memfs.New()), []string{"word/media/image1.jpeg"}, archive, "out", officemedia.NewConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected %v, got %v", context.Canceled, err)
	}
}
