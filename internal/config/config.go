// Package config loads jyotish settings from .jyotish.toml, JYOTISH_* env
// vars and CLI flags through viper.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/akhenakh/jyotish/dasha"
	"github.com/akhenakh/jyotish/ephemeris"
	"github.com/akhenakh/jyotish/frames"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "JYOTISH"

// AyanamsaConfig sets the sidereal zero point.
type AyanamsaConfig struct {
	J2000Arcsec float64 `mapstructure:"j2000_arcsec" toml:"j2000_arcsec"`
}

// DashaConfig holds the default dasha mode.
type DashaConfig struct {
	Mode string `mapstructure:"mode" toml:"mode"`
}

// EphemerisConfig selects the planetary backend.
type EphemerisConfig struct {
	Source  string `mapstructure:"source" toml:"source"`     // series or jpl
	JPLFile string `mapstructure:"jpl_file" toml:"jpl_file"` // DE binary for the jpl source
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port int `mapstructure:"port" toml:"port"`
}

// StoreConfig selects the chart archive.
type StoreConfig struct {
	Driver string `mapstructure:"driver" toml:"driver"` // sqlite, postgres or empty
	DSN    string `mapstructure:"dsn" toml:"dsn"`
}

// Config holds all runtime configuration.
type Config struct {
	Verbose   bool            `mapstructure:"verbose" toml:"verbose"`
	Ayanamsa  AyanamsaConfig  `mapstructure:"ayanamsa" toml:"ayanamsa"`
	Dasha     DashaConfig     `mapstructure:"dasha" toml:"dasha"`
	Ephemeris EphemerisConfig `mapstructure:"ephemeris" toml:"ephemeris"`
	Server    ServerConfig    `mapstructure:"server" toml:"server"`
	Store     StoreConfig     `mapstructure:"store" toml:"store"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Ayanamsa:  AyanamsaConfig{J2000Arcsec: frames.LahiriJ2000Arcsec},
		Dasha:     DashaConfig{Mode: dasha.Astronomical.String()},
		Ephemeris: EphemerisConfig{Source: "series"},
		Server:    ServerConfig{Port: 8080},
		Store:     StoreConfig{Driver: "sqlite", DSN: "jyotish.db"},
	}
}

// BindEnv maps JYOTISH_SECTION_KEY variables onto section.key settings.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	d := Default()
	viper.SetDefault("verbose", d.Verbose)
	viper.SetDefault("ayanamsa.j2000_arcsec", d.Ayanamsa.J2000Arcsec)
	viper.SetDefault("dasha.mode", d.Dasha.Mode)
	viper.SetDefault("ephemeris.source", d.Ephemeris.Source)
	viper.SetDefault("ephemeris.jpl_file", d.Ephemeris.JPLFile)
	viper.SetDefault("server.port", d.Server.Port)
	viper.SetDefault("store.driver", d.Store.Driver)
	viper.SetDefault("store.dsn", d.Store.DSN)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if _, err := dasha.ParseMode(c.Dasha.Mode); err != nil {
		return fmt.Errorf("config: dasha.mode: %w", err)
	}
	switch c.Ephemeris.Source {
	case "series":
	case "jpl":
		if c.Ephemeris.JPLFile == "" {
			return fmt.Errorf("config: ephemeris.jpl_file is required for the jpl source")
		}
	default:
		return fmt.Errorf("config: unknown ephemeris.source %q", c.Ephemeris.Source)
	}
	switch c.Store.Driver {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unknown store.driver %q", c.Store.Driver)
	}
	if c.Ayanamsa.J2000Arcsec <= 0 {
		return fmt.Errorf("config: ayanamsa.j2000_arcsec must be positive")
	}
	return nil
}

// ArchiveEnabled reports whether a chart store is configured. The default
// is a local SQLite file; an empty driver turns the archive off.
func (c Config) ArchiveEnabled() bool { return c.Store.Driver != "" }

// DashaMode returns the parsed default mode.
func (c Config) DashaMode() dasha.Mode {
	m, _ := dasha.ParseMode(c.Dasha.Mode)
	return m
}

// AyanamsaModel returns the configured ayanamsa.
func (c Config) AyanamsaModel() frames.AyanamsaModel {
	return frames.AyanamsaModel{J2000Arcsec: c.Ayanamsa.J2000Arcsec}
}

// OpenSource returns the configured ephemeris backend and a close function.
func (c Config) OpenSource() (ephemeris.Source, func() error, error) {
	if c.Ephemeris.Source != "jpl" {
		return ephemeris.SeriesSource{}, func() error { return nil }, nil
	}
	src, err := ephemeris.OpenJPL(c.Ephemeris.JPLFile)
	if err != nil {
		return nil, nil, fmt.Errorf("config: open %s: %w", c.Ephemeris.JPLFile, err)
	}
	return src, src.Close, nil
}

// Decode parses a TOML document on top of the defaults.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode renders the configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to path, refusing to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	data, err := Default().Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
