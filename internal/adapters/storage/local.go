package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"afairytale/internal/domain"
)

// uploadSubdir is the directory under the public root where images land;
// the returned reference path starts with it so the front end can link
// files directly.
const uploadSubdir = "team"

type localStore struct {
	publicDir string
}

// NewLocalStore returns an ImageStore writing under publicDir/team.
// The directory is created on first use.
func NewLocalStore(publicDir string) domain.ImageStore {
	return &localStore{publicDir: publicDir}
}

// Save writes the upload to disk under a timestamp-prefixed name and returns
// the public reference path. Existing files are never overwritten or removed;
// a record dropping its image reference leaves the file in place.
func (s *localStore) Save(originalName string, r io.Reader) (string, error) {
	dir := filepath.Join(s.publicDir, uploadSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(originalName))
	absPath := filepath.Join(dir, filename)

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return "/" + uploadSubdir + "/" + filename, nil
}

// sanitizeFilename strips any path components and replaces whitespace with
// underscores so the name is safe to serve back.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Join(strings.Fields(name), "_")
}
