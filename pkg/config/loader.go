package config

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/gestured/pkg/filesystem"
	"github.com/arthur-debert/gestured/pkg/logging"
	"github.com/arthur-debert/gestured/pkg/paths"
	"github.com/arthur-debert/gestured/pkg/types"
)

// Loader orchestrates the configuration lifecycle: bootstrap at
// construction, then Load resolves the config path, parses it into the
// store and arms the file watcher.
type Loader struct {
	parser *Parser
	log    zerolog.Logger

	cancel context.CancelFunc

	// watchConfig enables live reload; settings can turn it off
	watchConfig bool

	// watching reports whether live reload is armed; it stays false when
	// watch registration failed and the process runs with the startup
	// configuration only.
	watching bool
}

// NewLoader creates a loader feeding the given store, backed by the OS
// filesystem. First-run bootstrap happens here; an error means the
// installation is broken or the home directory could not be resolved, and
// the caller should not continue.
func NewLoader(st types.Store) (*Loader, error) {
	return NewLoaderWithFS(st, filesystem.NewOS())
}

// NewLoaderWithFS is NewLoader with an explicit filesystem, for tests
func NewLoaderWithFS(st types.Store, fsys types.FS) (*Loader, error) {
	if err := copyDefaultIfMissing(fsys); err != nil {
		return nil, err
	}

	return &Loader{
		parser:      NewParser(st, fsys),
		log:         logging.GetLogger("config.loader"),
		watchConfig: true,
	}, nil
}

// SetWatchEnabled turns live reload on or off for subsequent Load calls.
// It defaults to on.
func (l *Loader) SetWatchEnabled(enabled bool) {
	l.watchConfig = enabled
}

// Load resolves the configuration path, performs the initial parse and
// starts watching the file for changes. An initial parse failure is
// returned to the caller: without a valid starting configuration there are
// no gestures to serve. A watch failure only disables live reload.
func (l *Loader) Load(ctx context.Context) error {
	home, err := paths.HomeDirectory()
	if err != nil {
		return err
	}
	configPath := paths.UserConfigFile(home)

	if err := l.parser.ParseFile(configPath); err != nil {
		return err
	}
	l.log.Info().Str("path", configPath).Msg("Configuration loaded")

	if !l.watchConfig {
		l.log.Info().Msg("Live reload disabled by settings")
		return nil
	}

	watchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	watcher := NewWatcher(configPath, func() error {
		return l.parser.ParseFile(configPath)
	})
	if err := watcher.Start(watchCtx); err != nil {
		// Soft failure: the daemon keeps running with the configuration
		// loaded at startup.
		l.log.Warn().Err(err).
			Msg("Cannot monitor the configuration file for changes; " +
				"restart gestured to apply configuration edits")
		return nil
	}
	l.watching = true

	return nil
}

// Watching reports whether live reload is active
func (l *Loader) Watching() bool {
	return l.watching
}

// Close stops the watch goroutine. Safe to call even if Load failed or was
// never called.
func (l *Loader) Close() {
	if l.cancel != nil {
		l.cancel()
	}
}
