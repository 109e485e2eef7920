package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/gestured/pkg/types"
)

// MemoryFS is an in-memory types.FS for tests. Directories are implicit:
// MkdirAll records them, and Stat reports a directory for any recorded
// prefix. It is not safe for concurrent use.
type MemoryFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemory creates an empty in-memory filesystem
func NewMemory() *MemoryFS {
	return &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

var _ types.FS = (*MemoryFS)(nil)

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	name = filepath.Clean(name)
	if data, ok := m.files[name]; ok {
		return &memFileInfo{name: filepath.Base(name), size: int64(len(data))}, nil
	}
	if m.dirs[name] {
		return &memFileInfo{name: filepath.Base(name), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	name = filepath.Clean(name)
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = filepath.Clean(name)
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[name] = stored
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	path = filepath.Clean(path)
	for p := path; p != "/" && p != "."; p = filepath.Dir(p) {
		m.dirs[p] = true
	}
	return nil
}

// Paths returns every file path written, sorted, for test assertions
func (m *MemoryFS) Paths() []string {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// HasDir reports whether MkdirAll recorded the directory or a child of it
func (m *MemoryFS) HasDir(path string) bool {
	path = filepath.Clean(path)
	if m.dirs[path] {
		return true
	}
	for p := range m.files {
		if strings.HasPrefix(p, path+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

type memFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi *memFileInfo) Name() string { return fi.name }
func (fi *memFileInfo) Size() int64  { return fi.size }
func (fi *memFileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
func (fi *memFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *memFileInfo) IsDir() bool        { return fi.dir }
func (fi *memFileInfo) Sys() interface{}   { return nil }
