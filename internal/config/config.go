// Package config loads settings from defaults, an optional config file and
// STASH_ environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"emoji-stash/internal/inventory"

	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid config")

const envPrefix = "STASH"

type Config struct {
	Inventory  Inventory  `mapstructure:"inventory"`
	Catalog    Catalog    `mapstructure:"catalog"`
	Server     Server     `mapstructure:"server"`
	Log        Log        `mapstructure:"log"`
	RunLog     RunLog     `mapstructure:"runlog"`
	Playground Playground `mapstructure:"playground"`
}

type Inventory struct {
	InitialCapacity int `mapstructure:"initial_capacity"`
	ColumnsPerRow   int `mapstructure:"columns_per_row"`
}

type Catalog struct {
	Path string `mapstructure:"path"` // empty: built-in items
}

type Server struct {
	Port    int    `mapstructure:"port"`
	HostKey string `mapstructure:"host_key"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type RunLog struct {
	Enabled bool `mapstructure:"enabled"`
}

type Playground struct {
	Refresh time.Duration `mapstructure:"refresh"`
}

func setDefaults(v *viper.Viper) {
	def := inventory.DefaultConfig()
	v.SetDefault("inventory.initial_capacity", def.InitialCapacity)
	v.SetDefault("inventory.columns_per_row", def.ColumnsPerRow)
	v.SetDefault("catalog.path", "")
	v.SetDefault("server.port", 2222)
	v.SetDefault("server.host_key", "server_host_key")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("runlog.enabled", true)
	v.SetDefault("playground.refresh", 500*time.Millisecond)
}

// Default returns the built-in settings, ignoring files and environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic("config: defaults: " + err.Error())
	}
	return c
}

// Load reads path (any format viper understands; empty means none), applies
// STASH_* environment overrides such as STASH_SERVER_PORT, and validates the
// result.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the rest of the program cannot use.
func (c Config) Validate() error {
	switch {
	case c.Inventory.InitialCapacity < 0:
		return fmt.Errorf("%w: inventory.initial_capacity %d is negative", ErrInvalid, c.Inventory.InitialCapacity)
	case c.Inventory.ColumnsPerRow <= 0:
		return fmt.Errorf("%w: inventory.columns_per_row must be positive, got %d", ErrInvalid, c.Inventory.ColumnsPerRow)
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalid, c.Server.Port)
	case c.Playground.Refresh < 0:
		return fmt.Errorf("%w: playground.refresh %s is negative", ErrInvalid, c.Playground.Refresh)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// InventoryConfig converts the inventory section for inventory.New.
func (c Config) InventoryConfig() inventory.Config {
	return inventory.Config{
		InitialCapacity: c.Inventory.InitialCapacity,
		ColumnsPerRow:   c.Inventory.ColumnsPerRow,
	}
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}
	return lvl, nil
}
