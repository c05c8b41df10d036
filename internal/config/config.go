package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database     DatabaseConfig
	Reservations ReservationsConfig
	UI           UIConfig
	Log          LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ReservationsConfig controls what happens on submit.
type ReservationsConfig struct {
	// Store records confirmed reservations in the local ledger.
	Store bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat     string `mapstructure:"date_format"`
	TimeFormat     string `mapstructure:"time_format"`
	Timezone       string
	DefaultCountry string `mapstructure:"default_country"`
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	File string
}

// Load reads configuration from file and env. Env var overrides use prefix MICASA_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "micasa", "micasa.db"))
	v.SetDefault("reservations.store", false)
	v.SetDefault("ui.date_format", "Mon 02 Jan 2006")
	v.SetDefault("ui.time_format", "15:04")
	v.SetDefault("ui.timezone", "Europe/Madrid")
	v.SetDefault("ui.default_country", "DE")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MICASA_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "micasa"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MICASA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit MICASA_CONFIG must exist; the default location is optional
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.DefaultCountry = strings.ToUpper(strings.TrimSpace(c.UI.DefaultCountry))
	return c, nil
}
