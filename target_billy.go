// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
)

// TargetBilly writes extracted media files to a [billy.Filesystem], e.g. an
// in-memory filesystem created with memfs.New or a chrooted osfs.
type TargetBilly struct {
	bfs billy.Filesystem
}

// NewTargetBilly creates a new target that writes to bfs.
func NewTargetBilly(bfs billy.Filesystem) *TargetBilly {
	return &TargetBilly{bfs: bfs}
}

// Unwrap returns the underlying billy.Filesystem.
func (b *TargetBilly) Unwrap() billy.Filesystem {
	return b.bfs
}

// CreateDir creates a directory at the specified path with the specified mode. If the directory already
// exists, nothing is done.
func (b *TargetBilly) CreateDir(path string, mode fs.FileMode) error {
	if err := b.bfs.MkdirAll(path, mode.Perm()); err != nil {
		return fmt.Errorf("failed to create directory (%w)", err)
	}
	return nil
}

// CreateFile creates a file at the specified path with src as content. See [Target] for details.
func (b *TargetBilly) CreateFile(path string, src io.Reader, mode fs.FileMode, overwrite bool, maxSize int64) (int64, error) {
	if _, err := b.bfs.Stat(path); !os.IsNotExist(err) {
		if err != nil {
			return 0, fmt.Errorf("invalid path: %w", err)
		}
		if !overwrite {
			return 0, fmt.Errorf("file already exists: %w", fs.ErrExist)
		}
	}

	dstFile, err := b.bfs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	n, err := io.Copy(limitWriter(dstFile, maxSize), src)
	if err != nil {
		dstFile.Close()
		return n, fmt.Errorf("failed to write file: %w", err)
	}

	return n, dstFile.Close()
}
