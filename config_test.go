package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_loadConfig(t *testing.T) {
	cfg, err := loadConfig("testdata/lumoterm.yaml")
	require.NoError(t, err)
	require.Equal(t, Config{Style: "dark"}, cfg)
}

func Test_loadConfig_missing(t *testing.T) {
	_, err := loadConfig("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func Test_defaultConfig(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultConfig, &cfg))
	require.Equal(t, "dark", cfg.Style)
}
