package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// DefaultPackageName is the package part of every namespace unless the
// config pins another one.
const DefaultPackageName = "keyenv"

// Config holds the CLI configuration. It never holds credentials.
type Config struct {
	Backend       string `json:"backend,omitempty"`
	PackageName   string `json:"package_name,omitempty"`
	DefaultOutput string `json:"default_output,omitempty"`
	FileDir       string `json:"file_dir,omitempty"`

	path string
}

// allowed values for enum keys; keys not listed accept any string
var enums = map[string][]string{
	"backend":        {"auto", "keyring", "file"},
	"default_output": {"auto", "json", "plain", "rich"},
}

// Load reads config from the XDG path, returns defaults if the file doesn't exist
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from path, returns defaults if the file doesn't exist
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{path: path}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.path = path

	for key, allowed := range enums {
		value, _ := cfg.Get(key)
		if value != "" && !slices.Contains(allowed, value) {
			return nil, fmt.Errorf("invalid %s %q in %s (valid: %s)", key, value, path, strings.Join(allowed, ", "))
		}
	}

	return &cfg, nil
}

// Path returns the file this config was loaded from
func (c *Config) Path() string {
	if c.path == "" {
		return ConfigPath()
	}
	return c.path
}

// Save writes the config back to its path
func (c *Config) Save() error {
	path := c.Path()

	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to JSON (not JSON5 for writing - JSON is valid JSON5)
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// field finds the string field tagged with key
func (c *Config) field(key string) (reflect.Value, bool) {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" && name == key {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// Keys returns the config key names in declaration order
func Keys() []string {
	t := reflect.TypeOf(Config{})
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys = append(keys, name)
		}
	}
	return keys
}

// Get retrieves a config value by key name
func (c *Config) Get(key string) (string, error) {
	f, ok := c.field(key)
	if !ok {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	return f.String(), nil
}

// Set validates and sets a config value by key name and saves
func (c *Config) Set(key, value string) error {
	f, ok := c.field(key)
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}

	if allowed, ok := enums[key]; ok && !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q (valid: %s)", key, value, strings.Join(allowed, ", "))
	}

	f.SetString(value)
	return c.Save()
}

// Unset sets a config value to its zero value and saves
func (c *Config) Unset(key string) error {
	f, ok := c.field(key)
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}

	f.SetString("")
	return c.Save()
}

// ResolvedPackageName returns the package name used in namespaces
func (c *Config) ResolvedPackageName() string {
	if c.PackageName != "" {
		return c.PackageName
	}
	return DefaultPackageName
}

// ResolvedFileDir returns the directory for file based secret storage
func (c *Config) ResolvedFileDir() string {
	if c.FileDir != "" {
		return c.FileDir
	}
	return DataDir()
}
