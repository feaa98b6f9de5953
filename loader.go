// File: config/loader.go
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// NewJSONProvider parses a JSON document once and returns a provider
// over it. Invalid JSON is a construction error; configuration loading
// cannot proceed against an unparseable source.
func NewJSONProvider(data []byte) (Provider, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // Preserve number precision
	var root map[string]any
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}
	return &documentProvider{root: root}, nil
}

// NewTOMLProvider parses a TOML document once and returns a provider
// over it.
func NewTOMLProvider(data []byte) (Provider, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}
	return &documentProvider{root: root}, nil
}

// NewYAMLProvider parses a YAML document once and returns a provider
// over it.
func NewYAMLProvider(data []byte) (Provider, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return &documentProvider{root: root}, nil
}

// NewFileProvider reads and parses a configuration file, choosing the
// format from the file extension and falling back to content
// detection. A missing file yields a null provider so optional config
// sources are never fatal; a present but unparseable file is a
// construction error.
func NewFileProvider(path string) (Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewNullProvider(), nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("unable to determine config format for file '%s'", path)
		}
	}

	provider, err := newProviderForFormat(format, data)
	if err != nil {
		return nil, fmt.Errorf("config file '%s': %w", path, err)
	}
	return provider, nil
}

// NewAppFileProvider resolves the conventional file for an application
// name and format designator, e.g. ("myapp", "json") reads
// "myapp.json". Missing files degrade to a null provider.
func NewAppFileProvider(appName, format string) (Provider, error) {
	return NewFileProvider(appName + "." + format)
}

func newProviderForFormat(format string, data []byte) (Provider, error) {
	switch format {
	case "toml":
		return NewTOMLProvider(data)
	case "json":
		return NewJSONProvider(data)
	case "yaml":
		return NewYAMLProvider(data)
	case "properties":
		return NewPropertiesProvider(data)
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".properties", ".props":
		return "properties"
	case ".conf", ".config":
		// Try to detect from content
		return ""
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// Try TOML before YAML, since YAML accepts nearly any input
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
