package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "HEXGRID"

	cfgKeyLogLevel    = "log_level"
	cfgKeyLogFormat   = "log_format"
	cfgKeyResolution  = "resolution"
	cfgKeyConcurrency = "concurrency"
	cfgKeyOutput      = "output"

	defaultResolution = 9
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# hexgrid configuration

# Log level: debug, info, warn, error
log_level: warn

# Log format: text or json
log_format: text

# Default resolution for encode and polyfill (0-15)
resolution: 9

# Workers for batch operations (0 = number of CPUs)
concurrency: 0

# Cell list output: text (one cell per line) or json
output: text
`

// defaultConfigDir returns $HOME/.hexgrid.
func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".hexgrid"), nil
}

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file on first run. Environment variables override file values.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFormat, "text")
	v.SetDefault(cfgKeyResolution, defaultResolution)
	v.SetDefault(cfgKeyConcurrency, 0)
	v.SetDefault(cfgKeyOutput, "text")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
