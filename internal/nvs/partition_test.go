package nvs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeImage(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func readImage(t *testing.T, path string) *image {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img := &image{}
	require.NoError(t, yaml.Unmarshal(data, img))
	return img
}

func fullImage(entries int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "format_version: %d\npages: 2\nentries:\n  app:\n", FormatVersion)
	for i := 0; i < entries; i++ {
		fmt.Fprintf(&b, "    key%d: v\n", i)
	}
	return b.String()
}

func TestFilePartition_InitFormatsMissingImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", partitionFile)
	p := NewFilePartition(path)

	require.NoError(t, p.Init())

	img := readImage(t, path)
	assert.Equal(t, FormatVersion, img.FormatVersion)
	assert.Equal(t, DefaultPages, img.Pages)
	assert.Empty(t, img.Entries)
}

func TestFilePartition_InitFormatsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), partitionFile)
	writeImage(t, path, "\n")

	require.NoError(t, NewFilePartition(path).Init())
	assert.Equal(t, FormatVersion, readImage(t, path).FormatVersion)
}

func TestFilePartition_InitLoadsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), partitionFile)
	writeImage(t, path, fullImage(3))

	p := NewFilePartition(path)
	require.NoError(t, p.Init())
	assert.Equal(t, 3, p.EntryCount())
}

func TestFilePartition_InitErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"newer version", "format_version: 99\npages: 3\n", ErrNewVersionFound},
		{"last page used", fullImage(EntriesPerPage + 1), ErrNoFreePages},
		{"zero pages", fmt.Sprintf("format_version: %d\npages: 0\n", FormatVersion), ErrNoFreePages},
		{"not yaml", "format_version: [unterminated", ErrCorrupt},
		{"missing version", "pages: 3\nentries:\n  a:\n    b: c\n", ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), partitionFile)
			writeImage(t, path, tt.content)

			err := NewFilePartition(path).Init()
			require.ErrorIs(t, err, tt.wantErr)

			var storeErr *StoreError
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, path, storeErr.Path)
		})
	}
}

func TestFilePartition_EraseRecoversFullPartition(t *testing.T) {
	path := filepath.Join(t.TempDir(), partitionFile)
	writeImage(t, path, fullImage(EntriesPerPage+1))

	p := NewFilePartition(path)
	require.NoError(t, Initialize(p))

	assert.Equal(t, 0, p.EntryCount())
	assert.Empty(t, readImage(t, path).Entries)
}

func TestFilePartition_EraseRecoversNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), partitionFile)
	writeImage(t, path, "format_version: 7\npages: 3\n")

	require.NoError(t, Initialize(NewFilePartition(path)))
	assert.Equal(t, FormatVersion, readImage(t, path).FormatVersion)
}

func TestFilePartition_CorruptImageIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), partitionFile)
	writeImage(t, path, "{{{")

	err := Initialize(NewFilePartition(path))
	require.ErrorIs(t, err, ErrCorrupt)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "{{{", string(data), "corrupt image must not be erased")
}
