// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import (
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// compression methods beyond store and deflate, that are supported when reading archives.
// reference: https://pkware.cachefly.net/webdocs/casestudies/APPNOTE.TXT (4.4.5)
const (
	methodBzip2 uint16 = 12
	methodZstd  uint16 = zstd.ZipMethodWinZip
	methodXz    uint16 = 95
)

// openArchive opens the zip archive at path. Decompressors for bzip2, zstd and xz
// compressed entries are registered on the returned reader.
func openArchive(path string) (*zip.ReadCloser, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	registerDecompressors(&rc.Reader)
	return rc, nil
}

// registerDecompressors adds the additional decompressors to r.
func registerDecompressors(r *zip.Reader) {
	r.RegisterDecompressor(methodBzip2, decompressBzip2)
	r.RegisterDecompressor(methodZstd, zstd.ZipDecompressor())
	r.RegisterDecompressor(methodXz, decompressXz)
}

// decompressBzip2 returns a reader that decompresses src with the bzip2 algorithm.
func decompressBzip2(src io.Reader) io.ReadCloser {
	r, err := bzip2.NewReader(src, nil)
	if err != nil {
		return &errorReadCloser{err: err}
	}
	return r
}

// decompressXz returns a reader that decompresses src with the xz algorithm.
func decompressXz(src io.Reader) io.ReadCloser {
	r, err := xz.NewReader(src)
	if err != nil {
		return &errorReadCloser{err: err}
	}
	return &noopReaderCloser{Reader: r}
}

// entryNames returns the names of all entries in r in archive order.
func entryNames(r *zip.Reader) []string {
	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

// entryIndex maps entry names to the entries of r. If a name occurs more than
// once, the last entry wins.
func entryIndex(r *zip.Reader) map[string]*zip.File {
	index := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		index[f.Name] = f
	}
	return index
}

// noopReaderCloser is a struct that implements the io.ReaderCloser interface with a no-op Close method.
type noopReaderCloser struct {
	io.Reader
}

// Close is a no-op method that satisfies the io.Closer interface.
func (n *noopReaderCloser) Close() error {
	return nil
}

// errorReadCloser returns err on every read. It reports decompressors that
// failed to initialize.
type errorReadCloser struct {
	err error
}

func (e *errorReadCloser) Read([]byte) (int, error) { return 0, e.err }
func (e *errorReadCloser) Close() error             { return nil }
