package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScene = "pendulum"
	DefaultFPS   = 30
	DefaultTheme = "cyberpunk"
	DefaultData  = ".physviz"
)

// Config is the file-backed application configuration. CLI flags override
// anything loaded from a file.
type Config struct {
	Scene     string             `yaml:"scene"`
	FPS       int                `yaml:"fps"`
	Theme     string             `yaml:"theme"`
	DataDir   string             `yaml:"data_dir"`
	Variables map[string]float64 `yaml:"variables"`
}

func Default() *Config {
	return &Config{
		Scene:     DefaultScene,
		FPS:       DefaultFPS,
		Theme:     DefaultTheme,
		DataDir:   DefaultData,
		Variables: map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.FPS < 1 {
		cfg.FPS = DefaultFPS
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
