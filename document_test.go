// File: config/document_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONProvider(t *testing.T) {
	t.Run("NestedObjects", func(t *testing.T) {
		p, err := NewJSONProvider([]byte(`{"some":{"key":"value"}}`))
		require.NoError(t, err)

		v, ok := p.Lookup(ParseKey("some.key"))
		require.True(t, ok)
		assert.Equal(t, "value", v)

		// Structured nodes are only consumed via child enumeration.
		_, ok = p.Lookup(ParseKey("some"))
		assert.False(t, ok)
		assert.Equal(t, []string{"key"}, p.ChildSegments(ParseKey("some")))
	})

	t.Run("ArrayIndexing", func(t *testing.T) {
		p, err := NewJSONProvider([]byte(`{"a":[10,20,30]}`))
		require.NoError(t, err)

		v, ok := p.Lookup(ParseKey("a.1"))
		require.True(t, ok)
		assert.Equal(t, "20", v)

		_, ok = p.Lookup(ParseKey("a.5"))
		assert.False(t, ok)
		_, ok = p.Lookup(ParseKey("a.notanumber"))
		assert.False(t, ok)
		_, ok = p.Lookup(ParseKey("a.-1"))
		assert.False(t, ok)

		assert.Equal(t, []string{"0", "1", "2"}, p.ChildSegments(ParseKey("a")))
	})

	t.Run("ScalarRendering", func(t *testing.T) {
		p, err := NewJSONProvider([]byte(`{"b":true,"f":1.25,"i":42,"s":"txt","n":null,"big":9007199254740993}`))
		require.NoError(t, err)

		tests := []struct {
			key  string
			want string
		}{
			{"b", "true"},
			{"f", "1.25"},
			{"i", "42"},
			{"s", "txt"},
			// UseNumber preserves integers beyond float64 precision.
			{"big", "9007199254740993"},
		}
		for _, tt := range tests {
			v, ok := p.Lookup(ParseKey(tt.key))
			require.True(t, ok, tt.key)
			assert.Equal(t, tt.want, v)
		}

		// null is absent, not an empty string.
		_, ok := p.Lookup(ParseKey("n"))
		assert.False(t, ok)
	})

	t.Run("InvalidDocument", func(t *testing.T) {
		_, err := NewJSONProvider([]byte(`{"unterminated`))
		assert.Error(t, err)
	})
}

func TestTOMLProvider(t *testing.T) {
	data := []byte(`
[server]
host = "toml-host"
port = 8080
rate = 0.5
enabled = true

[[pool.workers]]
name = "w0"

[[pool.workers]]
name = "w1"
`)
	p, err := NewTOMLProvider(data)
	require.NoError(t, err)

	v, ok := p.Lookup(ParseKey("server.host"))
	require.True(t, ok)
	assert.Equal(t, "toml-host", v)

	v, ok = p.Lookup(ParseKey("server.port"))
	require.True(t, ok)
	assert.Equal(t, "8080", v)

	v, ok = p.Lookup(ParseKey("server.rate"))
	require.True(t, ok)
	assert.Equal(t, "0.5", v)

	v, ok = p.Lookup(ParseKey("server.enabled"))
	require.True(t, ok)
	assert.Equal(t, "true", v)

	// Arrays of tables index like JSON arrays.
	v, ok = p.Lookup(ParseKey("pool.workers.1.name"))
	require.True(t, ok)
	assert.Equal(t, "w1", v)
	assert.Equal(t, []string{"0", "1"}, p.ChildSegments(ParseKey("pool.workers")))
}

func TestYAMLProvider(t *testing.T) {
	data := []byte(`
server:
  host: yaml-host
  port: 7070
features:
  - metrics
  - tracing
`)
	p, err := NewYAMLProvider(data)
	require.NoError(t, err)

	v, ok := p.Lookup(ParseKey("server.host"))
	require.True(t, ok)
	assert.Equal(t, "yaml-host", v)

	v, ok = p.Lookup(ParseKey("features.0"))
	require.True(t, ok)
	assert.Equal(t, "metrics", v)

	_, ok = p.Lookup(ParseKey("features"))
	assert.False(t, ok)

	assert.Equal(t, []string{"host", "port"}, p.ChildSegments(ParseKey("server")))
}
