// Package paths provides centralized path handling for gestured: home
// directory resolution with a documented fallback chain and the well-known
// locations of the user and system-wide configuration files.
package paths

import (
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/gestured/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Well-known directories and files.
// IMPORTANT: These constants define where gestured and its packaging agree
// to place configuration. They are NOT user-configurable; changing them
// breaks installations that shipped the system-wide default.
const (
	// SystemShareDir is where the installation ships the default config
	SystemShareDir = "/usr/share/gestured"

	// UserConfigSubdir is the per-user config directory, relative to home
	UserConfigSubdir = ".config/gestured"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "gestured.conf"

	// SettingsFileName is the name of the optional daemon settings file
	SettingsFileName = "settings.toml"
)

// HomeDirectory returns the absolute path of the invoking user's home
// directory. $HOME is checked first; when it is unset or empty (minimal or
// service execution contexts) the OS user database is consulted for the
// current effective user ID.
func HomeDirectory() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	userInfo, err := user.LookupId(strconv.Itoa(os.Getuid()))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrHomeResolve,
			"unable to determine home directory: $HOME is unset and the user database has no record for the current user")
	}

	if userInfo.HomeDir == "" {
		return "", errors.New(errors.ErrHomeResolve,
			"unable to determine home directory: the user database record has no home directory")
	}

	return userInfo.HomeDir, nil
}

// UserConfigDir returns the per-user config directory under the given home
func UserConfigDir(home string) string {
	return filepath.Join(home, UserConfigSubdir)
}

// UserConfigFile returns the per-user configuration file path under the
// given home
func UserConfigFile(home string) string {
	return filepath.Join(home, UserConfigSubdir, ConfigFileName)
}

// UserSettingsFile returns the optional daemon settings file path under the
// given home
func UserSettingsFile(home string) string {
	return filepath.Join(home, UserConfigSubdir, SettingsFileName)
}

// SystemDefaultConfigFile returns the system-wide default configuration file
// shipped by the installation
func SystemDefaultConfigFile() string {
	return filepath.Join(SystemShareDir, ConfigFileName)
}
