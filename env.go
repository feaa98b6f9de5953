// File: config/env.go
package config

import (
	"os"
	"strings"
)

// envProvider resolves keys against process environment variables.
// Key "a.b" maps to variable "A_B" (segments upper-cased, joined by
// underscores), optionally under a fixed variable prefix.
type envProvider struct {
	prefix  string
	lookup  func(name string) (string, bool)
	environ func() []string
}

// NewEnvProvider returns a provider over the process environment.
// prefix is prepended verbatim to every variable name, so with prefix
// "MYAPP_" the key "server.port" resolves from "MYAPP_SERVER_PORT".
func NewEnvProvider(prefix string) Provider {
	return NewEnvProviderFunc(prefix, os.LookupEnv, os.Environ)
}

// NewEnvProviderFunc is NewEnvProvider with injectable environment
// access, allowing deterministic tests without touching the real
// process environment. lookup resolves one variable; environ lists all
// variables in "NAME=value" form and is only used for child
// enumeration.
func NewEnvProviderFunc(prefix string, lookup func(string) (string, bool), environ func() []string) Provider {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if environ == nil {
		environ = os.Environ
	}
	return &envProvider{prefix: prefix, lookup: lookup, environ: environ}
}

func (p *envProvider) Lookup(key Key) (string, bool) {
	if key.IsRoot() {
		return "", false
	}
	return p.lookup(p.varName(key))
}

func (p *envProvider) ChildSegments(key Key) []string {
	namePrefix := p.prefix
	if !key.IsRoot() {
		namePrefix = p.varName(key) + "_"
	}

	seen := make(map[string]struct{})
	for _, pair := range p.environ() {
		name, _, ok := strings.Cut(pair, "=")
		if !ok || !strings.HasPrefix(name, namePrefix) {
			continue
		}
		segment, _, _ := strings.Cut(name[len(namePrefix):], "_")
		if segment == "" {
			continue
		}
		seen[strings.ToLower(segment)] = struct{}{}
	}
	return sortedSegments(seen)
}

// varName renders a key as its environment variable name.
func (p *envProvider) varName(key Key) string {
	name := strings.ReplaceAll(key.String(), KeySeparator, "_")
	return p.prefix + strings.ToUpper(name)
}
