// File: config/key_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestKeyParseRender tests the parse/render round-trip and permissive parsing
func TestKeyParseRender(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		rendered string
		segments int
	}{
		{"Empty", "", "", 0},
		{"Single", "port", "port", 1},
		{"Nested", "server.port", "server.port", 2},
		{"Deep", "a.b.c.d", "a.b.c.d", 4},
		{"LeadingSeparator", ".server.port", "server.port", 2},
		{"TrailingSeparator", "server.port.", "server.port", 2},
		{"RepeatedSeparator", "server..port", "server.port", 2},
		{"OnlySeparators", "...", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := ParseKey(tt.text)
			assert.Equal(t, tt.rendered, k.String())
			assert.Len(t, k, tt.segments)
		})
	}

	t.Run("RoundTrip", func(t *testing.T) {
		// Well-formed texts survive a parse/render cycle unchanged.
		for _, text := range []string{"a", "a.b", "server.tls.cert", "x.y.z.w"} {
			assert.Equal(t, text, ParseKey(text).String())
		}
	})
}

func TestKeyChildConcat(t *testing.T) {
	base := ParseKey("server")

	t.Run("Child", func(t *testing.T) {
		assert.Equal(t, "server.port", base.Child("port").String())
		// Child parses its segment permissively.
		assert.Equal(t, "server.tls.cert", base.Child("tls.cert").String())
		assert.Equal(t, "server", base.Child("").String())
	})

	t.Run("Concat", func(t *testing.T) {
		assert.Equal(t, "server.tls.cert", base.Concat(ParseKey("tls.cert")).String())
		assert.Equal(t, "server", base.Concat(RootKey()).String())
		assert.Equal(t, "server", RootKey().Concat(base).String())
	})

	t.Run("ConcatDoesNotMutate", func(t *testing.T) {
		a := ParseKey("a.b")
		_ = a.Concat(ParseKey("c"))
		assert.Equal(t, "a.b", a.String())
	})
}

func TestKeyPrefix(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		key      string
		isPrefix bool
		rest     string
	}{
		{"RootIsPrefixOfAll", "", "a.b", true, "a.b"},
		{"Self", "a.b", "a.b", true, ""},
		{"Proper", "a", "a.b.c", true, "b.c"},
		{"NotPrefix", "a.x", "a.b.c", false, ""},
		{"LongerThanKey", "a.b.c", "a.b", false, ""},
		{"SegmentBoundary", "se", "server.port", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, key := ParseKey(tt.prefix), ParseKey(tt.key)
			assert.Equal(t, tt.isPrefix, prefix.IsPrefixOf(key))

			rest, ok := key.StripPrefix(prefix)
			assert.Equal(t, tt.isPrefix, ok)
			if ok {
				assert.Equal(t, tt.rest, rest.String())
			}
		})
	}
}

func TestKeyEqual(t *testing.T) {
	assert.True(t, ParseKey("a.b").Equal(ParseKey("a.b")))
	assert.True(t, RootKey().Equal(ParseKey("")))
	assert.False(t, ParseKey("a.b").Equal(ParseKey("a")))
	assert.False(t, ParseKey("a.b").Equal(ParseKey("a.c")))
}
