package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nogo/experiments"
)

// AgentSettings configures the player in one seat.
type AgentSettings struct {
	Kind        string  `yaml:"kind"`
	Playouts    int     `yaml:"playouts"`
	Exploration float64 `yaml:"exploration"`
	Seed        uint64  `yaml:"seed"`
}

// Config drives a series of local games.
type Config struct {
	Games   int           `yaml:"games"`
	Display bool          `yaml:"display"`
	Level   string        `yaml:"level"`
	OutDir  string        `yaml:"out_dir"`
	Black   AgentSettings `yaml:"black"`
	White   AgentSettings `yaml:"white"`
}

func defaultConfig() Config {
	return Config{
		Games:  1,
		Level:  "info",
		OutDir: "experiments",
		Black:  AgentSettings{Kind: "mcts", Playouts: 200, Exploration: experiments.DefaultExploration, Seed: 1},
		White:  AgentSettings{Kind: "random", Seed: 2},
	}
}

func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}
