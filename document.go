// File: config/document.go
package config

import (
	"reflect"
	"strconv"

	"github.com/spf13/cast"
)

// documentProvider serves a parsed document tree (nested maps and
// arrays, as produced by the JSON, TOML, and YAML parsers). Documents
// are parsed once at construction and walked per lookup.
//
// A lookup that lands on a structured node (object, array, null) is
// absent rather than an error: structured values are only consumed
// through child enumeration. Array elements are addressed by decimal
// index segments; a non-numeric or out-of-range index is absent.
type documentProvider struct {
	root any
}

func (p *documentProvider) Lookup(key Key) (string, bool) {
	node, ok := p.walk(key)
	if !ok || node == nil {
		return "", false
	}
	if isStructured(node) {
		return "", false
	}
	text, err := cast.ToStringE(node)
	if err != nil {
		return "", false
	}
	return text, true
}

func (p *documentProvider) ChildSegments(key Key) []string {
	node, ok := p.walk(key)
	if !ok || node == nil {
		return nil
	}
	v := reflect.ValueOf(node)
	switch v.Kind() {
	case reflect.Map:
		seen := make(map[string]struct{}, v.Len())
		for _, mk := range v.MapKeys() {
			if mk.Kind() == reflect.String {
				seen[mk.String()] = struct{}{}
			}
		}
		return sortedSegments(seen)
	case reflect.Slice, reflect.Array:
		segments := make([]string, v.Len())
		for i := range segments {
			segments[i] = strconv.Itoa(i)
		}
		return segments
	}
	return nil
}

// walk descends the document tree segment by segment.
func (p *documentProvider) walk(key Key) (any, bool) {
	node := p.root
	for _, segment := range key {
		if node == nil {
			return nil, false
		}
		v := reflect.ValueOf(node)
		switch v.Kind() {
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return nil, false
			}
			entry := v.MapIndex(reflect.ValueOf(segment))
			if !entry.IsValid() {
				return nil, false
			}
			node = entry.Interface()
		case reflect.Slice, reflect.Array:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= v.Len() {
				return nil, false
			}
			node = v.Index(idx).Interface()
		default:
			return nil, false
		}
	}
	return node, true
}

// isStructured reports whether the node is an object or array rather
// than a scalar leaf.
func isStructured(node any) bool {
	switch reflect.ValueOf(node).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}
