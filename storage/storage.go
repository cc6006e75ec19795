package storage

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/ardnew/softscsi/pkg"
)

// Store is an opened backing store.
type Store interface {
	// Size returns the size of the store in bytes.
	Size() (int64, error)

	// Close releases the store.
	Close() error
}

// Opener opens backing stores by path.
type Opener interface {
	// OpenReadOnly opens the store at path without write access.
	OpenReadOnly(path string) (Store, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) (Store, error)

// OpenReadOnly calls f(path).
func (f OpenerFunc) OpenReadOnly(path string) (Store, error) {
	return f(path)
}

// FileOpener opens image files and block devices from the file system.
type FileOpener struct{}

// OpenReadOnly opens path with O_RDONLY. Block device nodes are opened as
// a [DeviceStore] so their size comes from the kernel.
func (FileOpener) OpenReadOnly(path string) (Store, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if isBlockDevice(stat.Mode()) {
		store, err := openDevice(path)
		if err != nil {
			return nil, err
		}
		pkg.LogDebug(pkg.ComponentStorage, "opened block device", "path", path)
		return store, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	pkg.LogDebug(pkg.ComponentStorage, "opened backing store", "path", path)
	return &FileStore{file: file}, nil
}

// isBlockDevice reports whether mode describes a block device node.
func isBlockDevice(mode fs.FileMode) bool {
	return mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice == 0
}

// FileStore is an image file opened by FileOpener.
type FileStore struct {
	file *os.File
}

// Size returns the file size.
func (f *FileStore) Size() (int64, error) {
	if f.file == nil {
		return 0, fs.ErrClosed
	}

	stat, err := f.file.Stat()
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}

// Close closes the underlying file.
func (f *FileStore) Close() error {
	if f.file != nil {
		err := f.file.Close()
		f.file = nil
		return err
	}
	return nil
}

// ErrNoStore is returned by MemoryOpener for unknown names.
var ErrNoStore = errors.New("no such store")

// MemoryOpener serves in-memory stores that have a size but no contents.
// It is safe for concurrent use.
type MemoryOpener struct {
	sizes map[string]int64
	opens int
	mutex sync.RWMutex
}

// NewMemoryOpener creates an opener with no stores.
func NewMemoryOpener() *MemoryOpener {
	return &MemoryOpener{sizes: make(map[string]int64)}
}

// Add registers a store of size bytes under name, replacing any previous one.
func (m *MemoryOpener) Add(name string, size int64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.sizes[name] = size
}

// Remove forgets the store registered under name.
func (m *MemoryOpener) Remove(name string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.sizes, name)
}

// OpenReadOnly opens the store registered under path.
func (m *MemoryOpener) OpenReadOnly(path string) (Store, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	size, ok := m.sizes[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: ErrNoStore}
	}

	m.opens++
	return &memoryStore{opener: m, size: size}, nil
}

// OpenCount returns the number of stores currently open.
func (m *MemoryOpener) OpenCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.opens
}

type memoryStore struct {
	opener *MemoryOpener
	size   int64
	closed bool
}

func (s *memoryStore) Size() (int64, error) {
	if s.closed {
		return 0, fs.ErrClosed
	}
	return s.size, nil
}

func (s *memoryStore) Close() error {
	if s.closed {
		return fs.ErrClosed
	}
	s.closed = true

	s.opener.mutex.Lock()
	defer s.opener.mutex.Unlock()
	s.opener.opens--
	return nil
}
