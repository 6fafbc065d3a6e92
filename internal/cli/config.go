package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/blueprint/pkg/errors"
)

// Config holds user defaults read from config.toml. Zero values mean "not
// set"; Seed uses nil for that, as 0 is a valid seed. Command-line flags
// always take precedence.
type Config struct {
	Style    string  `toml:"style"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Scale    float64 `toml:"scale"`
	Seed     *uint64 `toml:"seed"`
	CacheURL string  `toml:"cache_url"`
}

// loadConfig reads the config file at path. An empty path selects the
// default location, where a missing file is not an error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
