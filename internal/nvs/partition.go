package nvs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/facebookgo/atomicfile"
	"gopkg.in/yaml.v3"
)

const (
	// FormatVersion is the newest image format this store understands.
	FormatVersion = 2

	// DefaultPages is the page count of a freshly formatted partition.
	DefaultPages = 3

	// EntriesPerPage is the number of key-value entries one page holds.
	EntriesPerPage = 126

	partitionFile = "nvs.yaml"
)

// image is the on-disk representation of the partition.
type image struct {
	FormatVersion int                          `yaml:"format_version"`
	Pages         int                          `yaml:"pages"`
	Entries       map[string]map[string]string `yaml:"entries,omitempty"`
}

func blankImage() *image {
	return &image{FormatVersion: FormatVersion, Pages: DefaultPages}
}

func (img *image) entryCount() int {
	n := 0
	for _, ns := range img.Entries {
		n += len(ns)
	}
	return n
}

// usedPages rounds the entry count up to whole pages.
func (img *image) usedPages() int {
	return (img.entryCount() + EntriesPerPage - 1) / EntriesPerPage
}

// FilePartition is a Partition backed by a YAML image on the host
// filesystem. Writes are atomic: a crash leaves either the old or the new
// image in place.
type FilePartition struct {
	path string

	mu  sync.Mutex
	img *image
}

// NewFilePartition returns a partition stored at path. Nothing is read
// until Init is called.
func NewFilePartition(path string) *FilePartition {
	return &FilePartition{path: path}
}

// Path returns the image location.
func (p *FilePartition) Path() string {
	return p.path
}

// Init loads the partition image. A missing or blank image is formatted.
func (p *FilePartition) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return p.format()
	}
	if err != nil {
		return &StoreError{Op: "init", Path: p.path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return p.format()
	}

	img := &image{}
	if err := yaml.Unmarshal(data, img); err != nil {
		return &StoreError{Op: "init", Path: p.path, Err: fmt.Errorf("%w: %v", ErrCorrupt, err)}
	}

	if img.FormatVersion > FormatVersion {
		return &StoreError{
			Op:   "init",
			Path: p.path,
			Err:  fmt.Errorf("%w: version %d, supported %d", ErrNewVersionFound, img.FormatVersion, FormatVersion),
		}
	}
	if img.FormatVersion <= 0 {
		return &StoreError{Op: "init", Path: p.path, Err: fmt.Errorf("%w: missing format_version", ErrCorrupt)}
	}
	if img.usedPages() >= img.Pages {
		return &StoreError{
			Op:   "init",
			Path: p.path,
			Err:  fmt.Errorf("%w: %d entries in %d pages", ErrNoFreePages, img.entryCount(), img.Pages),
		}
	}

	p.img = img
	return nil
}

// Erase replaces the image with a blank one.
func (p *FilePartition) Erase() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.img = nil
	if err := p.write(blankImage()); err != nil {
		return &StoreError{Op: "erase", Path: p.path, Err: err}
	}
	return nil
}

// EntryCount returns the number of entries in the loaded image.
func (p *FilePartition) EntryCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.img == nil {
		return 0
	}
	return p.img.entryCount()
}

func (p *FilePartition) format() error {
	img := blankImage()
	if err := p.write(img); err != nil {
		return &StoreError{Op: "init", Path: p.path, Err: err}
	}
	p.img = img
	return nil
}

func (p *FilePartition) write(img *image) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0700); err != nil {
		return fmt.Errorf("failed to create partition directory: %w", err)
	}

	data, err := yaml.Marshal(img)
	if err != nil {
		return fmt.Errorf("failed to encode partition image: %w", err)
	}

	f, err := atomicfile.New(p.path, 0600)
	if err != nil {
		return fmt.Errorf("failed to open partition image: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Abort()
		return fmt.Errorf("failed to write partition image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to commit partition image: %w", err)
	}
	return nil
}

// DefaultPartitionPath returns the OS-appropriate location of the
// partition image:
//   - Linux: $XDG_CONFIG_HOME/softap/nvs.yaml or $HOME/.config/softap/nvs.yaml
//   - macOS: $HOME/Library/Application Support/softap/nvs.yaml
//   - Windows: %AppData%\softap\nvs.yaml
func DefaultPartitionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "softap", partitionFile), nil
}
