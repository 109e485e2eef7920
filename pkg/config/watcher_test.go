package config_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/gestured/pkg/config"
	"github.com/arthur-debert/gestured/pkg/errors"
)

func TestWatcherTriggersReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gestured.conf")
	require.NoError(t, os.WriteFile(path, []byte("<gestured></gestured>"), 0644))

	var reloads atomic.Int32
	w := config.NewWatcher(path, func() error {
		reloads.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("<gestured><application/></gestured>"), 0644))

	require.Eventually(t, func() bool {
		return reloads.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond, "modify event should trigger a reload")
}

func TestWatcherSurvivesReloadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gestured.conf")
	require.NoError(t, os.WriteFile(path, []byte("ok"), 0644))

	var reloads atomic.Int32
	w := config.NewWatcher(path, func() error {
		reloads.Add(1)
		return errors.New(errors.ErrConfigParse, "boom")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("first"), 0644))
	require.Eventually(t, func() bool {
		return reloads.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	// The loop must keep running after a failed reload
	before := reloads.Load()
	require.NoError(t, os.WriteFile(path, []byte("second"), 0644))
	require.Eventually(t, func() bool {
		return reloads.Load() > before
	}, 2*time.Second, 10*time.Millisecond, "watch loop must survive reload errors")
}

func TestWatcherStartFailsForMissingFile(t *testing.T) {
	w := config.NewWatcher(filepath.Join(t.TempDir(), "absent.conf"), func() error {
		t.Fatal("reload must not run when watch setup failed")
		return nil
	})

	err := w.Start(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigWatch))
}

func TestWatcherStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gestured.conf")
	require.NoError(t, os.WriteFile(path, []byte("ok"), 0644))

	var reloads atomic.Int32
	w := config.NewWatcher(path, func() error {
		reloads.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	// Give the goroutine a moment to observe cancellation, then verify
	// that later writes no longer trigger reloads.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("after cancel"), 0644))
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, reloads.Load())
}
