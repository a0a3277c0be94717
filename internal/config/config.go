// Package config provides configuration management for names-demo. Values
// come from built-in defaults, an optional KEY=value config file and bound
// command-line flags, resolved through a private viper instance.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mosescb/names-demo/internal/common"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultFileName is the config file looked up in the user's home directory
const DefaultFileName = ".names-demo.conf"

// Config holds names-demo settings
type Config struct {
	filePath string
	explicit bool // filePath was supplied by the caller and must exist
	v        *viper.Viper
}

// New creates a new Config instance.
// An empty filePath selects ~/.names-demo.conf, which may be absent.
func New(filePath string) *Config {
	explicit := filePath != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		filePath = filepath.Join(home, DefaultFileName)
	}

	v := viper.New()
	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	return &Config{
		filePath: filePath,
		explicit: explicit,
		v:        v,
	}
}

// Load reads configuration from file
func (c *Config) Load() error {
	// If the default file doesn't exist, that's okay - defaults apply
	if _, err := os.Stat(c.filePath); os.IsNotExist(err) && !c.explicit {
		return nil
	}

	c.v.SetConfigFile(c.filePath)
	c.v.SetConfigType("env")
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", c.filePath, err)
	}
	return nil
}

// BindFlag lets a command-line flag override key when the flag is set
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for config key %s", key)
	}
	if err := c.v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
	}
	return nil
}

// Set overrides a configuration value for this process
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// Validate checks that the resolved settings are usable
func (c *Config) Validate() error {
	if err := common.ValidateFilePath(c.DataFile()); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyDataFile, err)
	}
	if err := common.ValidateNotEmpty(c.Label()); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyOutputLabel, err)
	}
	if err := common.ValidateLogLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	return nil
}

// DataFile returns the demonstration file path
func (c *Config) DataFile() string {
	return c.v.GetString(KeyDataFile)
}

// Label returns the prefix printed before each line
func (c *Config) Label() string {
	return c.v.GetString(KeyOutputLabel)
}

// Interactive reports whether missing search input should be prompted for
func (c *Config) Interactive() bool {
	return c.v.GetBool(KeyInteractive)
}

// LogLevel returns the effective log level; verbose forces debug
func (c *Config) LogLevel() string {
	if c.v.GetBool(KeyVerbose) {
		return "debug"
	}
	return c.v.GetString(KeyLogLevel)
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	return c.filePath
}
