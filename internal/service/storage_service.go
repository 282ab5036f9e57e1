package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"doc-translator/internal/domain"
)

// LocalStorage keeps files flat in a single directory on disk. Names are
// used as-is and must already be sanitised.
type LocalStorage struct {
	root    string
	maxSize int64
}

// NewStorageService creates a directory backed store. maxSize <= 0 disables
// the size check on Save.
func NewStorageService(root string, maxSize int64) *LocalStorage {
	return &LocalStorage{
		root:    root,
		maxSize: maxSize,
	}
}

// Root returns the storage directory.
func (s *LocalStorage) Root() string {
	return s.root
}

// EnsureDir creates the storage directory when missing.
func (s *LocalStorage) EnsureDir() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", s.root, err)
	}
	return nil
}

// Path returns the on-disk path for name.
func (s *LocalStorage) Path(name string) (string, error) {
	if err := validateStorageName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.root, name), nil
}

// Save writes r to name, replacing any existing file, and returns its path.
func (s *LocalStorage) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	if err := s.EnsureDir(); err != nil {
		return "", err
	}

	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}

	err = writeFileAtomic(path, func(w io.Writer) error {
		n, err := io.Copy(w, &contextReader{ctx: ctx, r: src})
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", name, err)
		}
		if s.maxSize > 0 && n > s.maxSize {
			return fmt.Errorf("%w: limit is %d bytes", domain.ErrFileTooLarge, s.maxSize)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// Open opens a stored regular file for reading.
func (s *LocalStorage) Open(name string) (*os.File, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, name)
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, name)
	}
	return os.Open(path)
}

func validateStorageName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return domain.ErrInvalidFilename
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, 0):
		return domain.ErrInvalidFilename
	case strings.HasPrefix(name, ".tmp-"):
		return domain.ErrInvalidFilename
	}
	return nil
}

// contextReader stops a copy once ctx is cancelled.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
