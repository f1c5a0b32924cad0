package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	werrors "github.com/woby-dev/woby/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "woby.yaml"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultMaxFlushPasses bounds effect re-runs within one flush.
	DefaultMaxFlushPasses = 100

	// DefaultNamespace is the Prometheus namespace of the dev server.
	DefaultNamespace = "woby"

	// DefaultTracerName is the OpenTelemetry instrumentation name.
	DefaultTracerName = "github.com/woby-dev/woby"

	// DefaultRegion is used by export when no region is configured.
	DefaultRegion = "us-east-1"
)

// Environment variables that override the file.
const (
	EnvAddr     = "WOBY_ADDR"
	EnvLogLevel = "WOBY_LOG_LEVEL"
)

// ErrConfigInvalid is returned when the file cannot be read or fails
// validation.
var ErrConfigInvalid = werrors.New(werrors.CodeConfigInvalid)

// Config represents the complete woby.yaml configuration.
type Config struct {
	// Dev contains development server configuration.
	Dev DevConfig `yaml:"dev"`

	// Log selects the slog handler and level.
	Log LogConfig `yaml:"log"`

	// Metrics configures the Prometheus collector.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing configures flush spans.
	Tracing TracingConfig `yaml:"tracing"`

	// Render configures the render command.
	Render RenderConfig `yaml:"render"`

	// Export configures snapshot uploads.
	Export ExportConfig `yaml:"export"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Host is the host to bind to.
	Host string `yaml:"host"`

	// Port is the port to run the dev server on.
	Port int `yaml:"port"`

	// Strict turns use-after-dispose into errors.
	Strict bool `yaml:"strict"`

	// MaxFlushPasses bounds effect re-runs within one flush.
	MaxFlushPasses int `yaml:"maxFlushPasses"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is one of auto, text or json. Auto picks text on terminals.
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	TracerName string `yaml:"tracerName"`
}

// RenderConfig contains render command settings.
type RenderConfig struct {
	// Pretty indents the printed document.
	Pretty bool `yaml:"pretty"`
}

// ExportConfig contains the S3 snapshot destination.
type ExportConfig struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Dev: DevConfig{
			Host:           DefaultHost,
			Port:           DefaultPort,
			MaxFlushPasses: DefaultMaxFlushPasses,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Export: ExportConfig{
			Region: DefaultRegion,
		},
	}
}

// Load loads configuration from the given directory.
// It looks for woby.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile loads configuration from a specific file path. A missing file
// yields an error that matches fs.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfigInvalid.
				WithDetail("No "+ConfigFileName+" found at "+path).
				WithSuggestion("Create "+ConfigFileName+" or run without --config to use defaults").
				Wrap(err)
		}
		return nil, ErrConfigInvalid.Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes a woby.yaml document on top of the defaults. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := New()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ErrConfigInvalid.
			WithDetail("Failed to parse "+ConfigFileName).
			WithSuggestion("Check the YAML syntax and field names").
			Wrap(err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the path it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return ErrConfigInvalid.WithDetail("Config was not loaded from a file")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the given path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return ErrConfigInvalid.Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return ErrConfigInvalid.WithDetail("Failed to write " + path).Wrap(err)
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
		return "."
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills values the file set to their zero value.
func (c *Config) applyDefaults() {
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.MaxFlushPasses == 0 {
		c.Dev.MaxFlushPasses = DefaultMaxFlushPasses
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "auto"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
	if c.Export.Region == "" {
		c.Export.Region = DefaultRegion
	}
	c.Export.Prefix = strings.Trim(c.Export.Prefix, "/")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return ErrConfigInvalid.
			Detailf("dev.port %d is out of range", c.Dev.Port).
			WithSuggestion("Port must be between 0 and 65535")
	}
	if c.Dev.MaxFlushPasses < 0 {
		return ErrConfigInvalid.Detailf("dev.maxFlushPasses %d is negative", c.Dev.MaxFlushPasses)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		return ErrConfigInvalid.
			Detailf("log.format %q is not supported", c.Log.Format).
			WithSuggestion("Use auto, text or json")
	}
	return nil
}

// ApplyEnv applies WOBY_ADDR and WOBY_LOG_LEVEL from lookup, usually
// os.LookupEnv. The result is validated again.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if addr, ok := lookup(EnvAddr); ok && addr != "" {
		if err := c.SetAddress(addr); err != nil {
			return err
		}
	}
	if level, ok := lookup(EnvLogLevel); ok && level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	return c.Validate()
}

// SetAddress sets the dev host and port from a host:port string. An empty
// host keeps the configured one.
func (c *Config) SetAddress(addr string) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return ErrConfigInvalid.Detailf("address %q", addr).Wrap(err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return ErrConfigInvalid.Detailf("address %q has a non-numeric port", addr)
	}
	if host != "" {
		c.Dev.Host = host
	}
	c.Dev.Port = port
	return c.Validate()
}

// DevAddress returns the dev server listen address.
func (c *Config) DevAddress() string {
	return net.JoinHostPort(c.Dev.Host, strconv.Itoa(c.Dev.Port))
}

// DevURL returns the dev server URL.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// SlogLevel returns the configured level. Invalid levels were rejected by
// Validate, so the fallback is only reached on unvalidated configs.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, ErrConfigInvalid.
		Detailf("log level %q is not supported", s).
		WithSuggestion("Use debug, info, warn or error")
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing woby.yaml, or an error if not found.
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
			return "", ErrConfigInvalid.
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory").
				Wrap(fs.ErrNotExist)
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest woby.yaml above
// the working directory, falling back to defaults when there is none.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}

	return Load(root)
}
