package config

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/gestured/pkg/errors"
	"github.com/arthur-debert/gestured/pkg/logging"
)

// Watcher monitors the configuration file and triggers a reload on every
// modify or create event. Events are not debounced: editors that write in
// bursts cause one reload per detected event, which is harmless because a
// reload fully replaces the store.
type Watcher struct {
	path   string
	reload func() error
	log    zerolog.Logger
}

// NewWatcher creates a watcher that invokes reload whenever the file at
// path changes
func NewWatcher(path string, reload func() error) *Watcher {
	return &Watcher{
		path:   path,
		reload: reload,
		log:    logging.GetLogger("config.watcher"),
	}
}

// Start registers the filesystem watch and spawns the watch goroutine. The
// goroutine runs until ctx is cancelled. A non-nil error means live reload
// could not be armed; the caller decides whether that is fatal (it is not,
// for gestured: the process keeps the configuration loaded at startup).
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWatch,
			"cannot initialize filesystem notifications")
	}

	if err := fsw.Add(w.path); err != nil {
		_ = fsw.Close()
		return errors.Wrapf(err, errors.ErrConfigWatch,
			"cannot watch configuration file %s", w.path)
	}

	go w.run(ctx, fsw)

	w.log.Debug().Str("path", w.path).Msg("Watching configuration file")
	return nil
}

// run is the watch loop. A reload failure is logged and the loop keeps
// waiting for the next event; the store retains its previous contents
// because the parser only clears after a successful structural parse.
func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher) {
	defer func() {
		_ = fsw.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug().Msg("Configuration watch stopped")
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.log.Info().Str("path", event.Name).
				Msg("Configuration file changed, reloading settings")
			if err := w.reload(); err != nil {
				w.log.Error().Err(err).
					Msg("Reload failed, keeping previous configuration")
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("Filesystem notification error")
		}
	}
}
