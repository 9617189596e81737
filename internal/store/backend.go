package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrUnavailable indicates the backing medium could not be read or
// written. Handlers translate it to a 5xx response; no retry is
// attempted anywhere in the service layer.
var ErrUnavailable = errors.New("storage unavailable")

// Backend is the raw persistence medium underneath a Store. Implementations
// must make Write atomic: a concurrent reader observes either the previous
// or the new document, never a truncated one.
type Backend interface {
	// Ensure idempotently creates the collection with an empty document.
	Ensure(name string) error
	// Read returns the full stored document for the collection.
	Read(name string) ([]byte, error)
	// Write atomically replaces the stored document for the collection.
	Write(name string, data []byte) error
}

// FileBackend stores each collection as a single JSON file under a data
// directory, matching the one-array-file-per-collection layout on disk.
type FileBackend struct {
	dir string
}

// NewFileBackend returns a FileBackend rooted at dir. The directory is
// created on the first Ensure call.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

// Ensure creates the data directory and an empty collection file when absent.
func (b *FileBackend) Ensure(name string) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	path := b.path(name)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return b.Write(name, []byte("[]"))
}

// Read returns the collection file's contents.
func (b *FileBackend) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(b.path(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, nil
}

// Write replaces the collection file via a temp file and rename, so a
// failed write leaves either the old or the new document in place.
func (b *FileBackend) Write(name string, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmpName, b.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// MemoryBackend keeps collections in process memory. It is a drop-in
// substitute for FileBackend in tests.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Ensure creates the collection with an empty document when absent.
func (b *MemoryBackend) Ensure(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.data[name]; !ok {
		b.data[name] = []byte("[]")
	}
	return nil
}

// Read returns the stored document for the collection.
func (b *MemoryBackend) Read(name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: collection %q does not exist", ErrUnavailable, name)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write replaces the stored document for the collection.
func (b *MemoryBackend) Write(name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	b.data[name] = stored
	return nil
}
