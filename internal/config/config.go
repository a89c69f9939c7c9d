package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the configuration file.
	FileName = "htmlsmith.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 8080

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default render output directory.
	DefaultOutput = "dist"
)

// Config represents the complete htmlsmith.yaml configuration.
type Config struct {
	// Name is the project name.
	Name string `yaml:"name,omitempty"`

	// Version is the project version.
	Version string `yaml:"version,omitempty"`

	// Render contains markup generation settings.
	Render RenderConfig `yaml:"render,omitempty"`

	// Serve contains preview server settings.
	Serve ServeConfig `yaml:"serve,omitempty"`

	// Publish contains bucket upload settings.
	Publish PublishConfig `yaml:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains markup generation settings.
type RenderConfig struct {
	// Indent is the per-level indentation string. Empty selects the
	// default two spaces.
	Indent string `yaml:"indent,omitempty"`

	// Output is the directory rendered pages are written to.
	Output string `yaml:"output,omitempty"`
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Port is the port to run the preview server on.
	Port int `yaml:"port,omitempty"`

	// Host is the host to bind to.
	Host string `yaml:"host,omitempty"`

	// Dir is the directory served over HTTP. Empty falls back to the
	// render output directory.
	Dir string `yaml:"dir,omitempty"`

	// LiveReload enables browser reload on file changes.
	LiveReload bool `yaml:"liveReload,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `yaml:"watch,omitempty"`
}

// PublishConfig contains bucket upload settings.
type PublishConfig struct {
	// Bucket is the destination bucket name.
	Bucket string `yaml:"bucket,omitempty"`

	// Region is the bucket region.
	Region string `yaml:"region,omitempty"`

	// Prefix is an object key prefix prepended to every upload.
	Prefix string `yaml:"prefix,omitempty"`

	// CacheControl is applied to every uploaded object.
	CacheControl string `yaml:"cacheControl,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Render: RenderConfig{
			Output: DefaultOutput,
		},
		Serve: ServeConfig{
			Port:       DefaultPort,
			Host:       DefaultHost,
			LiveReload: true,
			Watch:      []string{DefaultOutput},
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for htmlsmith.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s found in %s", FileName, filepath.Dir(path))
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Render.Output == "" {
		c.Render.Output = DefaultOutput
	}

	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Dir == "" {
		c.Serve.Dir = c.Render.Output
	}
	if c.Serve.Watch == nil {
		c.Serve.Watch = []string{c.Serve.Dir}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port must be between 0 and 65535, got %d", c.Serve.Port)
	}
	return nil
}

// ServeAddress returns the address string for the preview server.
func (c *Config) ServeAddress() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// ServeURL returns the full URL for the preview server.
func (c *Config) ServeURL() string {
	return "http://" + c.ServeAddress()
}

// OutputPath returns the absolute path to the render output directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Render.Output) {
		return c.Render.Output
	}
	return filepath.Join(c.Dir(), c.Render.Output)
}

// ServePath returns the absolute path to the served directory.
func (c *Config) ServePath() string {
	dir := c.Serve.Dir
	if dir == "" {
		dir = c.Render.Output
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Dir(), dir)
}

// WatchPaths returns the absolute paths watched for changes.
func (c *Config) WatchPaths() []string {
	paths := make([]string, 0, len(c.Serve.Watch))
	for _, p := range c.Serve.Watch {
		if !filepath.IsAbs(p) {
			p = filepath.Join(c.Dir(), p)
		}
		paths = append(paths, p)
	}
	return paths
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing htmlsmith.yaml, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or any parent directory", FileName, startDir)
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
