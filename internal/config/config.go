package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	// JSONFileName is the default JSON configuration file name.
	JSONFileName = "modui.json"

	// YAMLFileName is the default YAML configuration file name.
	YAMLFileName = "modui.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default export output directory.
	DefaultOutput = "dist"
)

// Config is the complete modui project configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Output is the export output directory.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Preview configures the preview server.
	Preview PreviewConfig `json:"preview,omitempty" yaml:"preview,omitempty"`

	// Publish configures the static publisher.
	Publish PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// PreviewConfig configures the preview server.
type PreviewConfig struct {
	// Host is the bind host.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the bind port.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// Pretty enables pretty-printed HTML output.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`
}

// PublishConfig configures the static publisher.
type PublishConfig struct {
	// Bucket is the S3 bucket name.
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`

	// Prefix is the object key prefix.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Region is the AWS region.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Preview: PreviewConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
}

// Load reads configuration from the given path. The format is chosen by
// file extension: .json, or .yaml/.yml.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "config: parsing %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "config: parsing %s", path)
		}
	default:
		return nil, errors.Newf("config: unsupported extension %q", filepath.Ext(path))
	}

	cfg.applyDefaults()
	cfg.configPath = path
	return cfg, nil
}

// LoadDir looks for modui.json, then modui.yaml, in dir. A missing file
// is not an error; defaults are returned.
func LoadDir(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, YAMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// Save writes the configuration as JSON to the given path.
func (c *Config) Save(path string) error {
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "config: encoding")
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "config: writing %s", path)
	}
	return nil
}

// Path returns where the configuration was loaded from, if anywhere.
func (c *Config) Path() string {
	return c.configPath
}

// Addr returns the preview server bind address.
func (c *Config) Addr() string {
	return c.Preview.Host + ":" + strconv.Itoa(c.Preview.Port)
}

func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
}
