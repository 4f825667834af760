package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. COLORLEARN_CATALOG_DIR
const EnvPrefix = "COLORLEARN"

// Runtime holds startup configuration that is not exposed in the UI.
type Runtime struct {
	Catalog CatalogConfig
	UI      UIConfig
	Log     LogConfig
}

// CatalogConfig points at an optional catalog override directory.
type CatalogConfig struct {
	Dir string
}

// UIConfig holds presentation overrides.
type UIConfig struct {
	Language string
}

// LogConfig controls log output.
type LogConfig struct {
	Verbose bool
}

// LoadRuntime reads configuration from file and env. The file is
// $COLORLEARN_CONFIG or ~/.config/color-and-learn/config.toml; a missing
// file is not an error.
func LoadRuntime() (Runtime, error) {
	v := viper.New()

	v.SetDefault("catalog.dir", "")
	v.SetDefault("ui.language", "")
	v.SetDefault("log.verbose", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv(EnvPrefix + "_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "color-and-learn"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine unless one was named explicitly
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Runtime{}, fmt.Errorf("read config: %w", err)
		}
	}

	var rt Runtime
	if err := v.Unmarshal(&rt); err != nil {
		return Runtime{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return rt, nil
}

