// File: config/builder.go
package config

import (
	"fmt"
	"os"
)

// ValidatorFunc validates a fully assembled Config and returns an
// error if it is unusable.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for assembling a Config from
// providers, defaults, and key mappings. Provider order follows call
// order: the first provider added has the highest priority.
type Builder struct {
	providers  []Provider
	defaults   map[string]any
	mappings   map[string]Key
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{
		defaults: make(map[string]any),
		mappings: make(map[string]Key),
	}
}

// WithProvider appends a provider.
func (b *Builder) WithProvider(p Provider) *Builder {
	if p != nil {
		b.providers = append(b.providers, p)
	}
	return b
}

// WithEnv appends an environment provider under the given variable
// prefix, e.g. "MYAPP_".
func (b *Builder) WithEnv(prefix string) *Builder {
	return b.WithProvider(NewEnvProvider(prefix))
}

// WithMap appends a provider over a fixed dotted-key map.
func (b *Builder) WithMap(values map[string]string) *Builder {
	return b.WithProvider(NewMapProvider(values))
}

// WithProperties appends a provider over properties-format text. A
// parse failure fails Build.
func (b *Builder) WithProperties(data []byte) *Builder {
	p, err := NewPropertiesProvider(data)
	if err != nil {
		return b.fail(err)
	}
	return b.WithProvider(p)
}

// WithFile appends a file-backed provider. A missing file contributes
// a null provider; an unreadable or unparseable file fails Build.
func (b *Builder) WithFile(path string) *Builder {
	if path == "" {
		return b
	}
	p, err := NewFileProvider(path)
	if err != nil {
		return b.fail(err)
	}
	return b.WithProvider(p)
}

// WithAppFile appends the conventional file for an application name
// and format designator, e.g. ("myapp", "json").
func (b *Builder) WithAppFile(appName, format string) *Builder {
	p, err := NewAppFileProvider(appName, format)
	if err != nil {
		return b.fail(err)
	}
	return b.WithProvider(p)
}

// WithFileDiscovery searches for a configuration file (explicit CLI
// flag or environment variable first, then search paths) and appends
// it when found. Not finding any file is not an error.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions, args []string) *Builder {
	if path, found := FindConfigFile(opts, args); found {
		return b.WithFile(path)
	}
	return b
}

// WithDefault records a typed default value at the dotted key.
func (b *Builder) WithDefault(key string, value any) *Builder {
	b.defaults[ParseKey(key).String()] = value
	return b
}

// WithKeyMapping records a key rewrite: lookups under `from` are
// treated as lookups under `to`.
func (b *Builder) WithKeyMapping(from, to string) *Builder {
	b.mappings[ParseKey(from).String()] = ParseKey(to)
	return b
}

// WithValidator adds a validation function run at the end of Build.
// Validators run in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build assembles the Config and runs validators.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	cfg := New(b.providers...)
	// Mappings first, so defaults land at their mapped keys.
	for from, to := range b.mappings {
		cfg = cfg.WithKeyMapping(ParseKey(from), to)
	}
	cfg = cfg.withDefaults(b.defaults)

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Quick assembles the recommended configuration for an application
// with a single call: environment variables first, then a discovered
// configuration file (the "appName.json" contract plus the other
// supported formats).
func Quick(appName, envPrefix string) (*Config, error) {
	return NewBuilder().
		WithEnv(envPrefix).
		WithFileDiscovery(DefaultDiscoveryOptions(appName), os.Args[1:]).
		Build()
}
