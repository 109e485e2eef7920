package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// xdg caches state home at init, reload after changing env
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			xdg.Reload()
			defer xdg.Reload()

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			// Check that log file was created
			logPath := filepath.Join(tempDir, "gestured", "gestured.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	xdg.Reload()
	defer xdg.Reload()

	got := getLogFilePath()
	if !strings.HasSuffix(got, filepath.Join("gestured", "gestured.log")) {
		t.Errorf("getLogFilePath() = %q, want gestured/gestured.log suffix", got)
	}
	if !strings.HasPrefix(got, "/custom/state") {
		t.Errorf("getLogFilePath() = %q, want /custom/state prefix", got)
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("config")
	// Just verify we get a usable logger back
	logger.Debug().Msg("test message")
}
