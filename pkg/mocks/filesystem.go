package mocks

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/user/tinyrender/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem.
// Files created with Create stay readable through GetFile after Close.
type FileSystem struct {
	mu      sync.RWMutex
	files   map[string][]byte
	handles map[string]*File
	dirs    map[string]bool

	CreateFunc    func(path string) (io.WriteCloser, error)
	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)

	CreateCalls []string
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files:   make(map[string][]byte),
		handles: make(map[string]*File),
		dirs:    make(map[string]bool),
	}
}

func (m *FileSystem) Create(path string) (io.WriteCloser, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, path)
	m.mu.Unlock()

	if m.CreateFunc != nil {
		wc, err := m.CreateFunc(path)
		if f, ok := wc.(*File); ok && err == nil {
			m.mu.Lock()
			m.handles[path] = f
			m.mu.Unlock()
		}
		return wc, err
	}

	f := &File{}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	m.handles[path] = f
	return f, nil
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	if data, ok := m.GetFile(path); ok {
		return data, nil
	}
	return nil, fmt.Errorf("file not found: %s", path)
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.handles, path)
	m.files[path] = data
	return nil
}

func (m *FileSystem) MkdirAll(path string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[path]; ok {
		return true, nil
	}
	if _, ok := m.handles[path]; ok {
		return true, nil
	}
	if _, ok := m.dirs[path]; ok {
		return true, nil
	}
	return false, nil
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[path]; ok {
		return data, true
	}
	if f, ok := m.handles[path]; ok {
		return f.Bytes(), true
	}
	return nil, false
}

// GetHandle returns the File returned by Create for path.
func (m *FileSystem) GetHandle(path string) (*File, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.handles[path]
	return f, ok
}

// GetAllFiles returns all files (for test verification).
func (m *FileSystem) GetAllFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string][]byte)
	for k, v := range m.files {
		result[k] = v
	}
	for k, f := range m.handles {
		result[k] = f.Bytes()
	}
	return result
}

var _ ports.FileSystem = (*FileSystem)(nil)

// File is an in-memory io.WriteCloser.
// WriteFunc decides how many bytes of each write are accepted; accepted
// bytes are kept even when WriteFunc also returns an error.
type File struct {
	mu  sync.Mutex
	buf bytes.Buffer

	WriteFunc func(p []byte) (int, error)
	CloseFunc func() error

	Writes     int
	CloseCalls int
}

func (f *File) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Writes++
	if f.WriteFunc != nil {
		n, err := f.WriteFunc(p)
		if n > len(p) {
			n = len(p)
		}
		if n > 0 {
			f.buf.Write(p[:n])
		}
		return n, err
	}
	return f.buf.Write(p)
}

func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CloseCalls++
	if f.CloseFunc != nil {
		return f.CloseFunc()
	}
	return nil
}

// Closed reports whether Close was called at least once.
func (f *File) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.CloseCalls > 0
}

// Bytes returns a copy of everything written so far.
func (f *File) Bytes() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.buf.Bytes()...)
}

// FailingWriter returns a WriteFunc that accepts the first limit bytes in
// total and then fails with err, reporting a short count.
func FailingWriter(limit int, err error) func(p []byte) (int, error) {
	written := 0
	return func(p []byte) (int, error) {
		room := limit - written
		if room >= len(p) {
			written += len(p)
			return len(p), nil
		}
		if room < 0 {
			room = 0
		}
		written += room
		return room, err
	}
}
