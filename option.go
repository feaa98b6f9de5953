// File: config/option.go
package config

import (
	"errors"
	"reflect"
)

// Option is a configuration value that may be absent. Decoding an
// Option[T] never fails because the key is missing: absence yields
// None. Malformed source text and mismatched defaults still fail, so
// optional never hides bad data.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the value when present, otherwise the fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// UnmarshalConfig implements the Unmarshaler interface.
//
// A default of type Option[T] at the key is unboxed first: Some(v)
// injects v as the default for the inner decode, None removes any
// default. The inner decode of T then runs normally; only a
// NotFoundError from it collapses to None.
func (o *Option[T]) UnmarshalConfig(cfg *Config, key Key) error {
	if def, ok := cfg.DefaultAt(key); ok {
		if boxed, isOpt := def.(Option[T]); isOpt {
			if v, some := boxed.Get(); some {
				cfg = cfg.WithDefault(key, v)
			} else {
				cfg = cfg.WithoutDefault(key)
			}
		}
	}

	var v T
	if err := decodeValue(reflect.ValueOf(&v).Elem(), key, cfg); err != nil {
		var missing *NotFoundError
		if errors.As(err, &missing) {
			*o = None[T]()
			return nil
		}
		return err
	}
	*o = Some(v)
	return nil
}
