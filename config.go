package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// Config is read from workflow.yaml. Missing keys keep their defaults.
type Config struct {
	SaveDirectory string  `yaml:"save_directory"`
	Confirmations bool    `yaml:"confirmations"`
	CellWidth     float64 `yaml:"cell_width"`
	CellHeight    float64 `yaml:"cell_height"`
	LinkKind      string  `yaml:"link_kind"`
	Font          string  `yaml:"font"`
	ExportPadding int     `yaml:"export_padding"`
	LogFile       string  `yaml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Confirmations: true,
		CellWidth:     5,
		CellHeight:    10,
		LinkKind:      "association",
		Font:          "regular",
		ExportPadding: 20,
	}
}

// FindConfigPath returns the first config file that exists, or "".
//  1. $WORKFLOW_CONFIG
//  2. ./workflow.yaml
//  3. ~/.config/workflow/config.yaml
func FindConfigPath() string {
	if p := os.Getenv("WORKFLOW_CONFIG"); p != "" {
		return p
	}
	candidates := []string{"workflow.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "workflow", "config.yaml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadConfig returns the config and the path it came from. Without a
// config file it returns the defaults and an empty path.
func loadConfig() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadConfigFromPath(path)
}

func LoadConfigFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, path, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, path, nil
}

func (c *Config) normalize() error {
	if c.CellWidth <= 0 {
		c.CellWidth = DefaultConfig().CellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = DefaultConfig().CellHeight
	}
	if c.ExportPadding < 0 {
		c.ExportPadding = 0
	}
	if _, ok := parseLinkKind(c.LinkKind); !ok {
		return fmt.Errorf("unknown link_kind %q", c.LinkKind)
	}
	switch strings.ToLower(c.Font) {
	case "", "regular", "mono":
	default:
		return fmt.Errorf("unknown font %q", c.Font)
	}
	if strings.HasPrefix(c.SaveDirectory, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			c.SaveDirectory = filepath.Join(home, strings.TrimPrefix(c.SaveDirectory, "~"))
		}
	}
	if c.SaveDirectory != "" && !filepath.IsAbs(c.SaveDirectory) {
		if abs, err := filepath.Abs(c.SaveDirectory); err == nil {
			c.SaveDirectory = abs
		}
	}
	return nil
}

func (c *Config) defaultLinkKind() LinkKind {
	k, _ := parseLinkKind(c.LinkKind)
	return k
}

func (c *Config) fontData() []byte {
	if strings.ToLower(c.Font) == "mono" {
		return gomono.TTF
	}
	return goregular.TTF
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
