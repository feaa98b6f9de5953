// File: config/fetch.go
package config

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Unmarshaler lets a type take over its own decoding from a Config.
// Implementations receive the config being decoded from and the key
// they are rooted at; Option and Pathname use this hook, and callers
// can implement it for application types.
type Unmarshaler interface {
	UnmarshalConfig(cfg *Config, key Key) error
}

// Fetch decodes a value of type T rooted at the given key.
//
// Scalars resolve the key directly: a provider hit is parsed from its
// raw text, a default hit must match T's runtime type exactly, and a
// miss fails with NotFoundError. Structs and slices recurse into child
// keys; see Option for optional semantics.
func Fetch[T any](cfg *Config, key Key) (T, error) {
	var v T
	if err := decodeValue(reflect.ValueOf(&v).Elem(), key, cfg); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// FetchRoot decodes a value of type T rooted at the root key.
func FetchRoot[T any](cfg *Config) (T, error) {
	return Fetch[T](cfg, RootKey())
}

// FetchDefault decodes like Fetch after injecting def as the default
// at the key. It can still fail on malformed source text or mismatched
// nested defaults, but never because the key is missing.
func FetchDefault[T any](cfg *Config, key Key, def T) (T, error) {
	return Fetch[T](cfg.WithDefault(key, def), key)
}

// FetchRootDefault is FetchDefault at the root key.
func FetchRootDefault[T any](cfg *Config, def T) (T, error) {
	return FetchDefault(cfg, RootKey(), def)
}

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	byteSliceType       = reflect.TypeOf([]byte(nil))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// decodeValue is the type-directed core of the decode protocol. rv
// must be an addressable value; the decoded result is written into it.
func decodeValue(rv reflect.Value, key Key, cfg *Config) error {
	if rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(Unmarshaler); ok {
			return u.UnmarshalConfig(cfg, key)
		}
	}

	t := rv.Type()
	if t == durationType || t == byteSliceType {
		return decodeScalar(rv, key, cfg)
	}
	if rv.CanAddr() && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return decodeScalar(rv, key, cfg)
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return decodeScalar(rv, key, cfg)
	case reflect.Slice:
		return decodeList(rv, key, cfg)
	case reflect.Struct:
		return decodeStruct(rv, key, cfg)
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(t.Elem()))
		}
		return decodeValue(rv.Elem(), key, cfg)
	default:
		return fmt.Errorf("unsupported config target type %s at %q", t, key.String())
	}
}

// decodeScalar resolves the key and parses or unboxes a leaf value.
func decodeScalar(rv reflect.Value, key Key, cfg *Config) error {
	res := cfg.Lookup(key)
	switch res.Kind {
	case FoundInSource:
		return parseScalar(rv, res.Key, res.Raw)
	case FoundInDefaults:
		dv := reflect.ValueOf(res.Default)
		if !dv.IsValid() || dv.Type() != rv.Type() {
			return &DefaultTypeError{Key: res.Key, Want: rv.Type().String(), Got: res.Default}
		}
		rv.Set(dv)
		return nil
	default:
		return notFound(res.Key, rv.Type().String())
	}
}

// parseScalar runs the target type's exact textual parser over raw
// source text. Parsing is locale-free: integers are decimal, booleans
// accept exactly "true" or "false" ignoring case.
func parseScalar(rv reflect.Value, key Key, raw string) error {
	t := rv.Type()

	if t == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return &ParseError{Key: key, Raw: raw, Type: t.String(), Err: err}
		}
		rv.Set(reflect.ValueOf(d))
		return nil
	}
	if t == byteSliceType {
		rv.SetBytes([]byte(raw))
		return nil
	}
	if rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := u.UnmarshalText([]byte(raw)); err != nil {
				return &ParseError{Key: key, Raw: raw, Type: t.String(), Err: err}
			}
			return nil
		}
	}

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Bool:
		switch {
		case strings.EqualFold(raw, "true"):
			rv.SetBool(true)
		case strings.EqualFold(raw, "false"):
			rv.SetBool(false)
		default:
			return &ParseError{Key: key, Raw: raw, Type: t.String(), Err: fmt.Errorf("want \"true\" or \"false\"")}
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return &ParseError{Key: key, Raw: raw, Type: t.String(), Err: err}
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return &ParseError{Key: key, Raw: raw, Type: t.String(), Err: err}
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return &ParseError{Key: key, Raw: raw, Type: t.String(), Err: err}
		}
		rv.SetFloat(f)
	default:
		return fmt.Errorf("unsupported scalar target type %s at %q", t, key.String())
	}
	return nil
}
