// File: config/key.go
package config

import "strings"

// KeySeparator joins key segments in the textual form of a Key.
const KeySeparator = "."

// Key is an immutable hierarchical configuration path made of dotted
// segments, e.g. "server.port". The zero value is the root key.
//
// Keys are pure values: every operation returns a new Key and never
// mutates the receiver. Two keys are interchangeable whenever their
// rendered forms are equal.
type Key []string

// RootKey returns the empty key.
func RootKey() Key {
	return nil
}

// ParseKey builds a Key from its dotted textual form. Parsing is
// permissive: empty segments produced by leading, trailing, or repeated
// separators are dropped, so "a..b." parses the same as "a.b".
func ParseKey(text string) Key {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, KeySeparator)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) == 0 {
		return nil
	}
	return Key(segments)
}

// String renders the key as its segments joined by the separator.
// The root key renders as the empty string.
func (k Key) String() string {
	return strings.Join(k, KeySeparator)
}

// IsRoot reports whether the key has no segments.
func (k Key) IsRoot() bool {
	return len(k) == 0
}

// Child returns a new key with the given segment appended. The segment
// is parsed permissively, so Child("a.b") appends two segments.
func (k Key) Child(segment string) Key {
	return k.Concat(ParseKey(segment))
}

// Concat returns a new key holding the receiver's segments followed by
// the other key's segments.
func (k Key) Concat(other Key) Key {
	if len(other) == 0 {
		return k
	}
	joined := make(Key, 0, len(k)+len(other))
	joined = append(joined, k...)
	joined = append(joined, other...)
	return joined
}

// Equal reports whether both keys hold the same segment sequence.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether the receiver's segments form a leading
// subsequence of the other key's segments. The root key is a prefix of
// every key.
func (k Key) IsPrefixOf(other Key) bool {
	if len(k) > len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// StripPrefix removes the given prefix from the front of the key,
// returning the remaining segments. The second return value is false
// when the prefix does not match.
func (k Key) StripPrefix(prefix Key) (Key, bool) {
	if !prefix.IsPrefixOf(k) {
		return nil, false
	}
	rest := k[len(prefix):]
	if len(rest) == 0 {
		return nil, true
	}
	return rest, true
}
