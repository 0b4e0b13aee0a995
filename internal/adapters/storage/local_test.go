package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	path, err := store.Save("press photo.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/team/\d+-press_photo\.jpg$`), path)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(path, "/"))))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestLocalStore_Save_strips_path_components(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	path, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^/team/\d+-passwd$`), path)

	entries, err := os.ReadDir(filepath.Join(dir, "team"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"flyer.png", "flyer.png"},
		{"press photo.jpg", "press_photo.jpg"},
		{"  many   spaces .png", "many_spaces_.png"},
		{"dir/nested.png", "nested.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), tt.in)
	}
}
