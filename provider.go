// File: config/provider.go
package config

import "sort"

// Provider is a read-only capability over one configuration backing
// medium. A provider resolves a key to its raw textual value and
// enumerates the immediate child segments that exist under a key.
//
// Providers are constructed once at startup and are expected to be
// effectively read-only afterwards; lookups are pure reads with no
// lifecycle beyond construction.
type Provider interface {
	// Lookup returns the raw text for the key, if present.
	Lookup(key Key) (string, bool)

	// ChildSegments returns the set of immediate child segments that
	// exist under the key. It never descends more than one level.
	ChildSegments(key Key) []string
}

// nullProvider reports every key as absent. It stands in for optional
// backing files that do not exist, so their absence is never fatal.
type nullProvider struct{}

// NewNullProvider returns a provider with no values.
func NewNullProvider() Provider {
	return nullProvider{}
}

func (nullProvider) Lookup(Key) (string, bool)  { return "", false }
func (nullProvider) ChildSegments(Key) []string { return nil }

// mapProvider serves a fixed in-memory mapping from rendered dotted
// keys to raw text values.
type mapProvider struct {
	values map[string]string
}

// NewMapProvider returns a provider backed by the given mapping of
// dotted key text to raw values. The map is used live; callers must
// not mutate it concurrently with lookups.
func NewMapProvider(values map[string]string) Provider {
	return &mapProvider{values: values}
}

func (p *mapProvider) Lookup(key Key) (string, bool) {
	v, ok := p.values[key.String()]
	return v, ok
}

func (p *mapProvider) ChildSegments(key Key) []string {
	seen := make(map[string]struct{})
	for text := range p.values {
		rest, ok := ParseKey(text).StripPrefix(key)
		if !ok || len(rest) == 0 {
			continue
		}
		seen[rest[0]] = struct{}{}
	}
	return sortedSegments(seen)
}

// namespaceProvider mounts a wrapped provider under a fixed key
// prefix, letting one backing source serve several independent
// namespaces without re-parsing.
type namespaceProvider struct {
	prefix  Key
	wrapped Provider
}

// NewNamespaceProvider mounts a provider under the given prefix: a
// lookup of prefix+K is answered by the wrapped provider at K, and
// keys outside the prefix are absent.
func NewNamespaceProvider(prefix Key, wrapped Provider) Provider {
	return &namespaceProvider{prefix: prefix, wrapped: wrapped}
}

func (p *namespaceProvider) Lookup(key Key) (string, bool) {
	rest, ok := key.StripPrefix(p.prefix)
	if !ok {
		return "", false
	}
	return p.wrapped.Lookup(rest)
}

func (p *namespaceProvider) ChildSegments(key Key) []string {
	if rest, ok := key.StripPrefix(p.prefix); ok {
		return p.wrapped.ChildSegments(rest)
	}
	// Above the mount point the next prefix segment is the only child.
	if key.IsPrefixOf(p.prefix) {
		return []string{p.prefix[len(key)]}
	}
	return nil
}

// sortedSegments renders a segment set as a sorted slice.
func sortedSegments(seen map[string]struct{}) []string {
	if len(seen) == 0 {
		return nil
	}
	segments := make([]string, 0, len(seen))
	for s := range seen {
		segments = append(segments, s)
	}
	sort.Strings(segments)
	return segments
}
