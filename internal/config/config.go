package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v2"
)

// DefaultFileName is looked up in the analysed directory when no --config is given
const DefaultFileName = ".jlint.yml"

const (
	OutputCLI   = "cli"
	OutputText  = "text"
	OutputJSON  = "json"
	OutputSARIF = "sarif"
	OutputTUI   = "tui"
)

var ValidOutputs = []string{OutputCLI, OutputText, OutputJSON, OutputSARIF, OutputTUI}

type Config struct {
	Checks           string   `yaml:"checks"`
	Output           string   `yaml:"output"`
	Ignore           []string `yaml:"ignore"`
	IncludeSynthetic bool     `yaml:"include_synthetic"`
	Logger           Logger   `yaml:"logger"`
	UML              UML      `yaml:"uml"`
}

type Logger struct {
	Level string `yaml:"level"`
}

type UML struct {
	Output   string `yaml:"output"`
	Renderer string `yaml:"renderer"`
}

func Default() *Config {
	return &Config{
		Checks: "all",
		Output: OutputCLI,
		UML: UML{
			Output:   "design.puml",
			Renderer: "native",
		},
	}
}

// LoadYAML decodes a YAML file into data
func LoadYAML(configPath string, data interface{}) error {
	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// Load reads the configuration for an analysis run. An explicit path must exist;
// without one, .jlint.yml in dir is used when present and defaults otherwise.
func Load(explicitPath, dir string) (*Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		path = filepath.Join(dir, DefaultFileName)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
	}

	if err := LoadYAML(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output == "" {
		c.Output = OutputCLI
	}
	if !slices.Contains(ValidOutputs, c.Output) {
		return fmt.Errorf("output must be one of %s, got %q", strings.Join(ValidOutputs, ", "), c.Output)
	}

	if strings.TrimSpace(c.Checks) == "" {
		c.Checks = "all"
	}

	c.UML.Renderer = strings.ToLower(strings.TrimSpace(c.UML.Renderer))
	if c.UML.Renderer == "" {
		c.UML.Renderer = "native"
	}
	if c.UML.Renderer != "native" && c.UML.Renderer != "genuml" {
		return fmt.Errorf("uml.renderer must be native or genuml, got %q", c.UML.Renderer)
	}

	if c.UML.Output == "" {
		c.UML.Output = "design.puml"
	}
	if !filepath.IsAbs(c.UML.Output) && filepath.Base(c.UML.Output) != c.UML.Output {
		return fmt.Errorf("uml.output must be a file name or an absolute path, got %q", c.UML.Output)
	}

	return nil
}
