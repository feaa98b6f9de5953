// File: config/errors.go
package config

import (
	"fmt"
	"strings"
)

// NotFoundError reports that no provider and no default supplied a
// value for a required key. Composite decoders may list every
// candidate key they tried.
type NotFoundError struct {
	Keys []Key
	Type string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	rendered := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		rendered[i] = fmt.Sprintf("%q", k.String())
	}
	return fmt.Sprintf("missing required config value of type %s at %s", e.Type, strings.Join(rendered, ", "))
}

// ParseError reports that a source supplied raw text the target type's
// parser rejected.
type ParseError struct {
	Key  Key
	Raw  string
	Type string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config value %q at %q as %s: %v", e.Raw, e.Key.String(), e.Type, e.Err)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// DefaultTypeError reports a default value whose runtime type does not
// match the requested type. This indicates a programming error by
// whoever constructed the defaults, not bad input data, but it is
// still surfaced as a recoverable decode error.
type DefaultTypeError struct {
	Key  Key
	Want string
	Got  any
}

// Error implements the error interface.
func (e *DefaultTypeError) Error() string {
	return fmt.Sprintf("default value at %q has type %T (%v), want %s", e.Key.String(), e.Got, e.Got, e.Want)
}

// notFound builds the single-key missing error.
func notFound(key Key, typeName string) error {
	return &NotFoundError{Keys: []Key{key}, Type: typeName}
}
