// File: config/integration_test.go
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halyard-io/config"
)

// Exercises the public API the way an application would: a config file
// on disk, environment overrides, typed defaults, and typed reads.
func TestLayeredResolution(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "svc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
host = "file.example.org"
port = 8080

[log]
file = "/var/log/svc.txt"
`), 0o644))

	t.Setenv("SVC_SERVER_PORT", "9090")

	cfg, err := config.NewBuilder().
		WithEnv("SVC_").
		WithFile(path).
		WithDefault("server.timeout", 30*time.Second).
		WithDefault("log.file.extension", config.Some("log")).
		Build()
	require.NoError(t, err)

	type serverSettings struct {
		Host    string        `config:"host"`
		Port    int           `config:"port"`
		Timeout time.Duration `config:"timeout"`
	}

	srv, err := config.Fetch[serverSettings](cfg, config.ParseKey("server"))
	require.NoError(t, err)
	// Environment outranks the file, the file outranks nothing, and
	// the default fills the key neither source carries.
	assert.Equal(t, 9090, srv.Port)
	assert.Equal(t, "file.example.org", srv.Host)
	assert.Equal(t, 30*time.Second, srv.Timeout)

	logFile, err := config.Fetch[config.Pathname](cfg, config.ParseKey("log.file"))
	require.NoError(t, err)
	assert.Equal(t, "/var/log/svc.log", logFile.String())

	missing, err := config.Fetch[config.Option[string]](cfg, config.ParseKey("server.motd"))
	require.NoError(t, err)
	assert.False(t, missing.IsSome())
}

func TestAliasedLegacyKeys(t *testing.T) {
	cfg, err := config.NewBuilder().
		WithMap(map[string]string{"db.primary.dsn": "postgres://old"}).
		WithKeyMapping("database", "db.primary").
		Build()
	require.NoError(t, err)

	dsn, err := config.Fetch[string](cfg, config.ParseKey("database.dsn"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://old", dsn)
}

func TestBulkScanAlongsideTypedReads(t *testing.T) {
	cfg, err := config.NewBuilder().
		WithMap(map[string]string{
			"app.name":     "svc",
			"app.replicas": "3",
			"app.regions":  "eu,us",
		}).
		Build()
	require.NoError(t, err)

	var out struct {
		Name     string   `config:"name"`
		Replicas int      `config:"replicas"`
		Regions  []string `config:"regions"`
	}
	require.NoError(t, cfg.Scan(config.ParseKey("app"), &out))
	assert.Equal(t, "svc", out.Name)
	assert.Equal(t, 3, out.Replicas)
	assert.Equal(t, []string{"eu", "us"}, out.Regions)

	// The typed path sees the same data.
	n, err := config.Fetch[int](cfg, config.ParseKey("app.replicas"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
