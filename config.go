// File: config/config.go
package config

// ResultKind tags the outcome of resolving one key against a Config.
type ResultKind int

const (
	// Missing means no provider and no default had the key.
	Missing ResultKind = iota
	// FoundInSource means an ordered provider supplied raw text.
	FoundInSource
	// FoundInDefaults means the defaults table supplied a typed value.
	FoundInDefaults
)

// Result is the three-way outcome of a lookup. The distinction is
// load-bearing for decoding: source hits always go through text
// parsing, while default hits carry an already-typed value that only
// needs a type-compatibility check.
type Result struct {
	Kind ResultKind
	// Key is the key the result was resolved at, after key mapping.
	Key Key
	// Raw holds the source text when Kind is FoundInSource.
	Raw string
	// Default holds the boxed value when Kind is FoundInDefaults.
	Default any
}

// Config aggregates an ordered list of providers with a table of typed
// default values and a key-remapping table.
//
// Config values are immutable: every transformation returns a new
// Config sharing the unmodified parts, so a Config can be threaded
// through recursive decode calls and used from multiple goroutines
// without locking.
type Config struct {
	providers []Provider
	defaults  map[string]any
	mappings  map[string]Key
}

// New builds a Config over the given providers. Provider order is
// significant and fixed: lookups consult providers front to back and
// the first present value wins.
func New(providers ...Provider) *Config {
	return &Config{providers: providers}
}

// Lookup resolves a key. The key-mapping table is applied first
// (longest matching prefix is rewritten), then each provider is tried
// in order, then the defaults table.
func (c *Config) Lookup(key Key) Result {
	key = c.mapKey(key)
	for _, p := range c.providers {
		if raw, ok := p.Lookup(key); ok {
			return Result{Kind: FoundInSource, Key: key, Raw: raw}
		}
	}
	if def, ok := c.defaults[key.String()]; ok {
		return Result{Kind: FoundInDefaults, Key: key, Default: def}
	}
	return Result{Kind: Missing, Key: key}
}

// ChildSegments returns the deduplicated union of every provider's
// immediate child segments under the key, after key mapping. It drives
// dynamic discovery of list items and record subkeys when no explicit
// hint or default is available.
func (c *Config) ChildSegments(key Key) []string {
	key = c.mapKey(key)
	seen := make(map[string]struct{})
	for _, p := range c.providers {
		for _, s := range p.ChildSegments(key) {
			seen[s] = struct{}{}
		}
	}
	return sortedSegments(seen)
}

// WithDefault returns a new Config whose defaults table additionally
// maps the key to the given typed value. Defaults are consulted only
// after every provider has missed. The key mapping is applied before
// storing so that WithDefault and Lookup always agree on the key.
func (c *Config) WithDefault(key Key, value any) *Config {
	return c.withDefaults(map[string]any{key.String(): value})
}

// WithoutDefault returns a new Config with any default at the key
// removed.
func (c *Config) WithoutDefault(key Key) *Config {
	mapped := c.mapKey(key).String()
	if _, ok := c.defaults[mapped]; !ok {
		return c
	}
	next := c.clone()
	delete(next.defaults, mapped)
	return next
}

// WithKeyMapping returns a new Config that treats lookups under `from`
// as if they were asked under `to`: whenever `from` is a prefix of a
// requested key, that prefix is substituted before providers and
// defaults are consulted.
func (c *Config) WithKeyMapping(from, to Key) *Config {
	next := c.clone()
	if next.mappings == nil {
		next.mappings = make(map[string]Key, 1)
	}
	next.mappings[from.String()] = to
	return next
}

// DefaultAt reports the default value stored for the key, after key
// mapping, regardless of what any provider would answer.
func (c *Config) DefaultAt(key Key) (any, bool) {
	def, ok := c.defaults[c.mapKey(key).String()]
	return def, ok
}

// withDefaults adds a batch of defaults with a single copy.
func (c *Config) withDefaults(entries map[string]any) *Config {
	if len(entries) == 0 {
		return c
	}
	next := c.clone()
	if next.defaults == nil {
		next.defaults = make(map[string]any, len(entries))
	}
	for k, v := range entries {
		next.defaults[c.mapKey(ParseKey(k)).String()] = v
	}
	return next
}

// clone copies the config with fresh default and mapping tables. The
// provider list is shared; it is fixed at construction.
func (c *Config) clone() *Config {
	next := &Config{providers: c.providers}
	if len(c.defaults) > 0 {
		next.defaults = make(map[string]any, len(c.defaults))
		for k, v := range c.defaults {
			next.defaults[k] = v
		}
	}
	if len(c.mappings) > 0 {
		next.mappings = make(map[string]Key, len(c.mappings))
		for k, v := range c.mappings {
			next.mappings[k] = v
		}
	}
	return next
}

// mapKey applies the longest-matching-prefix rewrite from the mapping
// table. The rewrite is applied once; mapped targets are not re-mapped.
func (c *Config) mapKey(key Key) Key {
	if len(c.mappings) == 0 {
		return key
	}
	var (
		best    Key
		target  Key
		matched bool
	)
	for fromText, to := range c.mappings {
		from := ParseKey(fromText)
		if !from.IsPrefixOf(key) {
			continue
		}
		if !matched || len(from) > len(best) {
			best, target, matched = from, to, true
		}
	}
	if !matched {
		return key
	}
	rest, _ := key.StripPrefix(best)
	return target.Concat(rest)
}
