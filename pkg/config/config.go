// Package config loads game settings from an optional YAML file, a .env file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every setting of the game.
type Config struct {
	Game GameConfig `yaml:"game"`
	Log  LogConfig  `yaml:"log"`
}

type GameConfig struct {
	StartTurns  int   `yaml:"start_turns" env:"START_TURNS" env-default:"20"`
	StoryWidth  int   `yaml:"story_width" env:"STORY_WIDTH" env-default:"46"`
	StoryHeight int   `yaml:"story_height" env:"STORY_HEIGHT" env-default:"15"`
	Seed        int64 `yaml:"seed" env:"SEED" env-default:"0"` // 0 picks a time-based seed
	NoColor     bool  `yaml:"no_color" env:"NO_COLOR" env-default:"false"`
}

type LogConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"warn"`
	Encoding   string `yaml:"encoding" env:"LOG_ENCODING" env-default:"console"`
	OutputPath string `yaml:"output" env:"LOG_OUTPUT" env-default:"stderr"`
}

// Load reads the configuration. A .env file in the working directory is
// loaded first if present. When path is empty only the environment is read;
// otherwise the file must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config from environment: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Game.StartTurns < 1:
		return fmt.Errorf("start_turns must be positive, got %d", c.Game.StartTurns)
	case c.Game.StoryWidth < 10:
		return fmt.Errorf("story_width must be at least 10, got %d", c.Game.StoryWidth)
	case c.Game.StoryHeight < 3:
		return fmt.Errorf("story_height must be at least 3, got %d", c.Game.StoryHeight)
	}
	return nil
}
