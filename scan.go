// File: config/scan.go
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Snapshot materializes the merged view under a key into a nested
// map: provider values win over defaults, raw source text is kept as
// strings, and defaults keep their typed values. It backs Scan and is
// useful for debugging what a decode would see.
func (c *Config) Snapshot(key Key) map[string]any {
	out := make(map[string]any)

	for _, segment := range c.ChildSegments(key) {
		child := key.Child(segment)
		if node, ok := c.snapshotNode(child); ok {
			out[segment] = node
		}
	}

	// Defaults may live under keys no provider knows about.
	mapped := c.mapKey(key)
	for text, value := range c.defaults {
		rest, ok := ParseKey(text).StripPrefix(mapped)
		if !ok || len(rest) == 0 {
			continue
		}
		setNestedValue(out, rest, value)
	}

	return out
}

// snapshotNode renders one subtree: children recurse, leaves resolve.
func (c *Config) snapshotNode(key Key) (any, bool) {
	segments := c.ChildSegments(key)
	if len(segments) == 0 {
		switch res := c.Lookup(key); res.Kind {
		case FoundInSource:
			return res.Raw, true
		case FoundInDefaults:
			return res.Default, true
		}
		return nil, false
	}

	m := make(map[string]any, len(segments))
	for _, segment := range segments {
		if node, ok := c.snapshotNode(key.Child(segment)); ok {
			m[segment] = node
		}
	}
	return m, true
}

// Scan decodes the merged configuration under a key into the target
// struct or map using mapstructure's weakly typed conversions. It is a
// bulk convenience beside the exact typed protocol of Fetch: it
// tolerates type coercions Fetch would reject and applies no default
// decomposition. The target must be a non-nil pointer; fields map via
// the `config` tag.
func (c *Config) Scan(key Key, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "config",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(c.Snapshot(key)); err != nil {
		return fmt.Errorf("failed to scan config at %q into %T: %w", key.String(), target, err)
	}
	return nil
}

// setNestedValue sets a value in a nested map, creating intermediate
// maps as needed. Existing entries are not overwritten: provider data
// placed first keeps priority over defaults merged afterwards.
func setNestedValue(nested map[string]any, key Key, value any) {
	current := nested
	for _, segment := range key[:len(key)-1] {
		next, exists := current[segment]
		if !exists {
			m := make(map[string]any)
			current[segment] = m
			current = m
			continue
		}
		m, isMap := next.(map[string]any)
		if !isMap {
			// A provider already supplied a scalar here; keep it.
			return
		}
		current = m
	}

	last := key[len(key)-1]
	if _, exists := current[last]; !exists {
		current[last] = value
	}
}

// Debug renders the resolution layers for troubleshooting: provider
// count, every default with its key, and every key mapping.
func (c *Config) Debug() string {
	var b strings.Builder
	fmt.Fprintf(&b, "providers: %d\n", len(c.providers))
	if len(c.defaults) > 0 {
		b.WriteString("defaults:\n")
		for k, v := range c.defaults {
			fmt.Fprintf(&b, "  %s = %v (%T)\n", k, v, v)
		}
	}
	if len(c.mappings) > 0 {
		b.WriteString("mappings:\n")
		for from, to := range c.mappings {
			fmt.Fprintf(&b, "  %s -> %s\n", from, to.String())
		}
	}
	return b.String()
}
