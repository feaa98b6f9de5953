// File: config/properties.go
package config

import (
	"fmt"

	"github.com/magiconair/properties"
)

// NewPropertiesProvider parses line-oriented "key=value" text and
// returns a provider over it. Keys are literal dotted strings with no
// structural nesting applied; when the same key appears on several
// lines the last one wins.
func NewPropertiesProvider(data []byte) (Provider, error) {
	parsed, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("failed to parse properties config: %w", err)
	}

	values := make(map[string]string, parsed.Len())
	for _, k := range parsed.Keys() {
		if v, ok := parsed.Get(k); ok {
			values[k] = v
		}
	}
	return &mapProvider{values: values}, nil
}
