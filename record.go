// File: config/record.go
package config

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// decodeStruct reconstructs a record type field by field. Each
// exported field decodes at a child key scoped by its `config` tag or,
// when untagged, by its name with the struct type's name stripped off
// the front and the first letter lowered. A whole-record default is
// decomposed into per-field defaults before any field decodes, so a
// single default object still allows every field to be overridden
// individually at any depth.
func decodeStruct(rv reflect.Value, key Key, cfg *Config) error {
	t := rv.Type()

	if def, ok := cfg.DefaultAt(key); ok {
		dv := reflect.ValueOf(def)
		if !dv.IsValid() || dv.Type() != t {
			return &DefaultTypeError{Key: key, Want: t.String(), Got: def}
		}
		entries := make(map[string]any, t.NumField())
		forEachField(t, func(i int, segment string) {
			entries[key.Child(segment).String()] = dv.Field(i).Interface()
		})
		cfg = cfg.withDefaults(entries)
	}

	var firstErr error
	forEachField(t, func(i int, segment string) {
		if firstErr != nil {
			return
		}
		firstErr = decodeValue(rv.Field(i), key.Child(segment), cfg)
	})
	return firstErr
}

// forEachField visits the decodable fields of a struct type with their
// child-key segments. Unexported fields and fields tagged `config:"-"`
// are skipped.
func forEachField(t reflect.Type, fn func(i int, segment string)) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("config")
		if tag == "-" {
			continue
		}

		segment := ""
		if tag != "" {
			parts := strings.Split(tag, ",")
			segment = parts[0]
		}
		if segment == "" {
			segment = fieldKeySegment(t.Name(), field.Name)
		}
		fn(i, segment)
	}
}

// fieldKeySegment derives a child-key segment from a field name: the
// struct type's name is stripped when it is a literal case-insensitive
// prefix, then the first letter is lowered. Server.ServerPort and
// Server.Port both map to "port".
func fieldKeySegment(typeName, fieldName string) string {
	name := fieldName
	if typeName != "" && len(fieldName) > len(typeName) &&
		strings.EqualFold(fieldName[:len(typeName)], typeName) {
		name = fieldName[len(typeName):]
	}
	return lowerFirst(name)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
