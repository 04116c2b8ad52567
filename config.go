package main

import (
	_ "embed"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = ".config/lumoterm.yaml"

//go:embed testdata/lumoterm.yaml
var defaultConfig []byte

type Config struct {
	Style    string `yaml:"style"`
	Language string `yaml:"language"`
	Pager    bool   `yaml:"pager"`
	Verbose  bool   `yaml:"verbose"`
}

func loadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	path := filepath.Join(home, defaultConfigPath)
	if _, err := os.Stat(path); err != nil {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Config{}, err
		}
		if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
			return Config{}, err
		}
	}
	return loadConfig(path)
}
