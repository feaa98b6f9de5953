// File: config/list.go
package config

import (
	"reflect"
	"strconv"
	"strings"
)

// Reserved child segments of a list key. They steer list decoding and
// are never treated as list items.
const (
	listKeysSegment      = "keys"
	listDefaultsSegment  = "defaults"
	listPrototypeSegment = "prototype"
)

// decodeList reconstructs a slice. Three strategies are tried in
// order: an explicit item-name hint at key/keys, positional
// decomposition of a default slice, and dynamic discovery of child
// segments across all providers.
func decodeList(rv reflect.Value, key Key, cfg *Config) error {
	if segments, ok := listKeysHint(cfg, key); ok {
		return decodeListItems(rv, key, cfg, segments)
	}

	if def, ok := cfg.DefaultAt(key); ok {
		return decodeListFromDefault(rv, key, cfg, def)
	}

	segments := adHocSegments(cfg.ChildSegments(key))
	if len(segments) == 0 {
		return notFound(key, rv.Type().String())
	}
	return decodeListItems(rv, key, cfg, segments)
}

// listKeysHint reads the comma-separated item names at key/keys, when
// present. Blanks are dropped and duplicates keep their first position.
func listKeysHint(cfg *Config, key Key) ([]string, bool) {
	res := cfg.Lookup(key.Child(listKeysSegment))

	var text string
	switch res.Kind {
	case FoundInSource:
		text = res.Raw
	case FoundInDefaults:
		s, ok := res.Default.(string)
		if !ok {
			return nil, false
		}
		text = s
	default:
		return nil, false
	}

	seen := make(map[string]struct{})
	var segments []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		segments = append(segments, part)
	}
	return segments, true
}

// decodeListFromDefault decomposes a default slice positionally into
// per-index defaults under key/defaults and decodes exactly that many
// items there. The default's length alone decides the list shape:
// every item resolves under key/defaults, so ad-hoc child segments
// present under the key never contribute items and need no redirect.
func decodeListFromDefault(rv reflect.Value, key Key, cfg *Config, def any) error {
	dv := reflect.ValueOf(def)
	if !dv.IsValid() || dv.Type() != rv.Type() {
		return &DefaultTypeError{Key: key, Want: rv.Type().String(), Got: def}
	}

	defaultsKey := key.Child(listDefaultsSegment)
	entries := make(map[string]any, dv.Len())
	segments := make([]string, dv.Len())
	for i := 0; i < dv.Len(); i++ {
		segments[i] = strconv.Itoa(i)
		entries[defaultsKey.Child(segments[i]).String()] = dv.Index(i).Interface()
	}
	cfg = cfg.withDefaults(entries)

	return decodeListItems(rv, defaultsKey, cfg, segments)
}

// decodeListItems decodes one item per segment at key/segment.
func decodeListItems(rv reflect.Value, key Key, cfg *Config, segments []string) error {
	out := reflect.MakeSlice(rv.Type(), len(segments), len(segments))
	for i, segment := range segments {
		if err := decodeValue(out.Index(i), key.Child(segment), cfg); err != nil {
			return err
		}
	}
	rv.Set(out)
	return nil
}

// adHocSegments filters the reserved list segments out of a child
// listing.
func adHocSegments(segments []string) []string {
	out := segments[:0:0]
	for _, s := range segments {
		switch s {
		case listKeysSegment, listDefaultsSegment, listPrototypeSegment:
			continue
		}
		out = append(out, s)
	}
	return out
}
