package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type Game struct {
	Preset string `mapstructure:"preset"`

	// Query is a query string such as "rows=16&cols=30&mines=99" and takes
	// precedence over Preset.
	Query string `mapstructure:"params"`

	// Seed fixes the board generator. 0 means a random seed.
	Seed uint64 `mapstructure:"seed"`
}

type Config struct {
	Development bool `mapstructure:"development"`
	Log         Log  `mapstructure:"log"`
	Game        Game `mapstructure:"game"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("development", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("game.preset", "default")
	v.SetDefault("game.params", "")
	v.SetDefault("game.seed", 0)
}

// Load reads the config file at path, if any, and applies SWEEPER_*
// environment overrides (SWEEPER_LOG_LEVEL for log.level and so on). The
// bare DEVELOPMENT variable is honoured too.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SWEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("development", "SWEEPER_DEVELOPMENT", "DEVELOPMENT"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	return &cfg, nil
}
