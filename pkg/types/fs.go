package types

import "io/fs"

// FS abstracts the filesystem operations the configuration core needs, so
// bootstrap and parsing can run against a real or fake filesystem in tests.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
