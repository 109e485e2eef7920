// Package settings loads the optional daemon settings file
// (~/.config/gestured/settings.toml). These are operator knobs for the
// daemon itself, not gesture bindings; gesture configuration lives in
// gestured.conf and is handled by pkg/config.
package settings

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/gestured/pkg/errors"
	"github.com/arthur-debert/gestured/pkg/paths"
)

// Settings holds daemon-level options. Precedence, lowest to highest:
// built-in defaults, settings.toml, GESTURED_* environment variables.
type Settings struct {
	// Verbosity is the log verbosity (0 warn, 1 info, 2 debug, 3+ trace)
	Verbosity int `koanf:"verbosity"`

	// LiveReload controls whether the configuration file is watched for
	// changes after the initial load
	LiveReload bool `koanf:"live_reload"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"verbosity":   0,
		"live_reload": true,
	}
}

// Load reads the daemon settings. A missing settings file is not an error;
// the defaults apply. A file that exists but cannot be parsed is.
func Load() (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load default settings")
	}

	if home, err := paths.HomeDirectory(); err == nil {
		settingsPath := paths.UserSettingsFile(home)
		if _, err := os.Stat(settingsPath); err == nil {
			if err := k.Load(file.Provider(settingsPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrSettingsLoad,
					"failed to load settings from %s", settingsPath)
			}
		}
	}

	// Keys are flat, so GESTURED_LIVE_RELOAD maps to live_reload
	err := k.Load(env.Provider("GESTURED_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GESTURED_"))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load settings from environment")
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to unmarshal settings")
	}

	return &s, nil
}
