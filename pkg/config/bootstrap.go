package config

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/gestured/pkg/errors"
	"github.com/arthur-debert/gestured/pkg/logging"
	"github.com/arthur-debert/gestured/pkg/paths"
	"github.com/arthur-debert/gestured/pkg/types"
)

// copyDefaultIfMissing guarantees a user-writable configuration file exists.
// If ~/.config/gestured/gestured.conf is already present this is a no-op;
// otherwise the system-wide default shipped by the installation is copied
// into place. A missing system default means a broken installation and is
// reported as such.
func copyDefaultIfMissing(fsys types.FS) error {
	home, err := paths.HomeDirectory()
	if err != nil {
		return err
	}

	userConfigFile := paths.UserConfigFile(home)
	if _, err := fsys.Stat(userConfigFile); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"cannot access configuration file %s", userConfigFile)
	}

	defaultConfigFile := paths.SystemDefaultConfigFile()
	data, err := fsys.ReadFile(defaultConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrDefaultConfigMissing,
				"default configuration %s not found; reinstall gestured to fix this",
				defaultConfigFile)
		}
		return errors.Wrapf(err, errors.ErrFileAccess,
			"cannot read default configuration %s", defaultConfigFile)
	}

	// MkdirAll is idempotent, so a previously interrupted bootstrap never
	// blocks a retry.
	userConfigDir := paths.UserConfigDir(home)
	if err := fsys.MkdirAll(userConfigDir, fs.FileMode(0755)); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create configuration directory %s", userConfigDir)
	}

	if err := fsys.WriteFile(userConfigFile, data, fs.FileMode(0644)); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy,
			"cannot copy default configuration to %s", userConfigFile)
	}

	logger := logging.GetLogger("config.bootstrap")
	logger.Info().
		Str("from", defaultConfigFile).
		Str("to", userConfigFile).
		Msg("Copied default configuration")

	return nil
}
