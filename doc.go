// File: config/doc.go

// Package config resolves typed configuration values from multiple,
// prioritized, heterogeneous sources and decodes them into structured
// Go values addressed by hierarchical dotted keys.
//
// Features:
//   - Ordered providers with first-match-wins precedence: environment
//     variables, JSON/TOML/YAML documents, properties text, in-memory
//     maps, and namespace-mounted wrappers
//   - Programmer-supplied typed defaults, automatically decomposed into
//     per-field and per-item defaults so partial overrides work at any
//     nesting depth
//   - Type-directed decoding via Fetch: scalars, Option values, slices
//     with dynamic item discovery, nested structs, path composites
//   - Key remapping: decode one subtree as if it were rooted elsewhere
//   - Immutable Config values, safe for concurrent use without locks
//   - Bulk struct decoding via Scan (mapstructure, weakly typed)
//   - File discovery (CLI flag, env var, XDG paths)
//
// Quick Start:
//
//	type Server struct {
//	    Host string        `config:"host"`
//	    Port int           `config:"port"`
//	    Idle time.Duration `config:"idleTimeout"`
//	}
//
//	cfg, err := config.Quick("myapp", "MYAPP_")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	srv, err := config.FetchDefault(cfg, config.ParseKey("server"), Server{
//	    Host: "localhost",
//	    Port: 8080,
//	})
//
// Precedence (highest to lowest):
//  1. Providers, in the order they were added (environment variables
//     before the configuration file above)
//  2. Defaults injected via WithDefault or FetchDefault
//
// Absence versus failure:
// decoding an Option[T] turns a missing key into None but still
// surfaces malformed text and mismatched defaults as errors. All
// decode failures are typed: NotFoundError, ParseError, or
// DefaultTypeError, matched with errors.As.
//
// Concurrency:
// a Config is an immutable value. Transformations like WithDefault
// return new Config values sharing unmodified state, so configs can be
// threaded through recursive decodes and shared across goroutines
// without locking. Providers are expected to be effectively read-only
// after construction.
package config
