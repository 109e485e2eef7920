// Package config implements the gestured configuration core: it parses the
// XML gesture configuration file into the binding store, bootstraps a
// per-user config from the system-wide default on first run, and keeps the
// store synchronized with the on-disk file for the life of the process.
//
// The loader is the entry point:
//
//	st := store.NewMemory()
//	loader, err := config.NewLoader(st)
//	if err != nil { ... }           // broken installation
//	if err := loader.Load(ctx); err != nil { ... } // no usable config
//	defer loader.Close()
//
// After Load returns, file modifications trigger a full clear-and-reparse of
// the store until the context is cancelled or Close is called.
package config
