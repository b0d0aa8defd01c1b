// Package config loads the optional symseek configuration file from
// the XDG config directory. Absence of the file is not an error; every
// field has a default. Flags override file values at the CLI layer,
// and the resolution engine itself never reads configuration.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/symseek/pkg/detect"
	"github.com/arthur-debert/symseek/pkg/errors"
	"github.com/arthur-debert/symseek/pkg/logging"
)

var log = logging.GetLogger("config")

// ConfigFileName is the file looked up under the xdg config dir
const ConfigFileName = "config.toml"

// Config holds the user-tunable settings
type Config struct {
	// StoreRoot is the content-addressed store prefix the wrapper
	// detectors look for
	StoreRoot string `toml:"store_root"`

	// Format is the default output format: auto, term, text or json
	Format string `toml:"format"`

	// NoColor disables styled output regardless of terminal support
	NoColor bool `toml:"no_color"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		StoreRoot: detect.DefaultStoreRoot,
		Format:    "auto",
	}
}

// Path returns the expected location of the config file
func Path() string {
	return filepath.Join(xdg.ConfigHome, "symseek", ConfigFileName)
}

// StylesPath returns the expected location of the styles override file
func StylesPath() string {
	return filepath.Join(xdg.ConfigHome, "symseek", "styles.yaml")
}

// Load reads the config file from its default location, falling back
// to defaults when the file does not exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads a config file from an explicit path. A missing file
// yields the defaults; a present but unreadable or malformed file is
// an error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("no config file, using defaults")
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config at %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config at %s", path)
	}

	if cfg.StoreRoot == "" {
		cfg.StoreRoot = detect.DefaultStoreRoot
	}
	if cfg.Format == "" {
		cfg.Format = "auto"
	}

	log.Debug().Str("path", path).Str("storeRoot", cfg.StoreRoot).Msg("config loaded")
	return cfg, nil
}
