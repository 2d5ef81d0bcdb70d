package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nxdevel/nx-misc/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".nx.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/nx"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment variable overrides (NX_TIMEZONE etc).
	EnvPrefix = "NX"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'nx init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .nx.yaml in current directory
// 3. ~/.config/nx/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if home, _ := os.UserHomeDir(); home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if
// not found. Commands that should work without a config file use this.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return nil, errors.New(errors.ErrConfig,
			"Invalid output.color value: "+cfg.Output.Color,
			"Use auto, always, or never")
	}

	if cfg.Demo.Count < 0 {
		return nil, errors.New(errors.ErrConfig,
			"demo.count cannot be negative",
			"Use 0 for an indeterminate demo or a positive item count")
	}

	return cfg, nil
}

// setDefaults seeds viper so partially specified files merge cleanly.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("timezone", def.Timezone)
	v.SetDefault("output.color", def.Output.Color)
	v.SetDefault("demo.count", def.Demo.Count)
	v.SetDefault("demo.interval", def.Demo.Interval.String())
	v.SetDefault("demo.message", def.Demo.Message)
}
