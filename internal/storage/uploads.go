// Package storage implements the upload boundary: raw file payloads are
// written to local disk and referenced by an opaque stored ref. The core
// never inspects refs, extensions, sizes, or content types.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	imagesSubdir = "images"
	videosSubdir = "videos"
)

// Store writes uploads beneath a base directory, split into images/ and
// videos/ subdirectories.
type Store struct {
	baseDir string
}

// NewStore creates the upload directories if needed and returns a Store.
func NewStore(baseDir string) (*Store, error) {
	for _, sub := range []string{imagesSubdir, videosSubdir} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload dir %s: %w", sub, err)
		}
	}
	return &Store{baseDir: baseDir}, nil
}

// BaseDir returns the root of the upload tree, for static file serving.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// SaveImage stores an image payload and returns its stored ref.
func (s *Store) SaveImage(name string, r io.Reader) (string, error) {
	return s.save(imagesSubdir, name, r)
}

// SaveVideo stores a video payload and returns its stored ref.
func (s *Store) SaveVideo(name string, r io.Reader) (string, error) {
	return s.save(videosSubdir, name, r)
}

// save writes the payload under the subdirectory using the client-supplied
// name, stripped to its base to keep writes inside the upload tree. The
// returned ref is the bare filename; callers persist it opaquely.
func (s *Store) save(subdir, name string, r io.Reader) (string, error) {
	ref := filepath.Base(name)
	if ref == "." || ref == string(filepath.Separator) || ref == "" {
		return "", fmt.Errorf("invalid upload name %q", name)
	}

	dst, err := os.Create(filepath.Join(s.baseDir, subdir, ref))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return ref, nil
}
