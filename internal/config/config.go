package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string   `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	Moves     []string `yaml:"moves" env:"MOVES" env-separator:";"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
