package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI flags; any field left at its zero value does not
// override the corresponding flag default.
type Config struct {
	Input     string `yaml:"input"`
	InputFile string `yaml:"input_file"`
	Format    string `yaml:"format"`
	Threads   int    `yaml:"threads"`
	Output    string `yaml:"output"`
	View      string `yaml:"view"`
	LogLevel  string `yaml:"log_level"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
