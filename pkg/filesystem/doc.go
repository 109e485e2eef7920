// Package filesystem provides types.FS implementations: the OS-backed
// filesystem used in production and an in-memory one for tests.
package filesystem
