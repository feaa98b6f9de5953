// File: config/pathname_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathname(t *testing.T) {
	fetch := func(t *testing.T, entries map[string]string) (Pathname, error) {
		t.Helper()
		return Fetch[Pathname](New(NewMapProvider(entries)), ParseKey("log.file"))
	}

	tt := []struct {
		name    string
		entries map[string]string
		want    string
	}{
		{
			name:    "BaseOnly",
			entries: map[string]string{"log.file": "/var/log/app.txt"},
			want:    "/var/log/app.txt",
		},
		{
			name: "ReplaceExtension",
			entries: map[string]string{
				"log.file":           "/var/log/app.txt",
				"log.file.extension": "log",
			},
			want: "/var/log/app.log",
		},
		{
			name: "ExtensionDotIsOptional",
			entries: map[string]string{
				"log.file":           "/var/log/app.txt",
				"log.file.extension": ".log",
			},
			want: "/var/log/app.log",
		},
		{
			name: "ReplaceDirectory",
			entries: map[string]string{
				"log.file":           "/var/log/app.txt",
				"log.file.directory": "/tmp",
			},
			want: "/tmp/app.txt",
		},
		{
			name: "ReplaceBaseNameKeepsExtension",
			entries: map[string]string{
				"log.file":          "/var/log/app.txt",
				"log.file.baseName": "audit",
			},
			want: "/var/log/audit.txt",
		},
		{
			name: "FileNameReplacesNameAndExtension",
			entries: map[string]string{
				"log.file":          "/var/log/app.txt",
				"log.file.fileName": "audit.json",
			},
			want: "/var/log/audit.json",
		},
		{
			name: "ComponentsOnly",
			entries: map[string]string{
				"log.file.directory": "/etc/app",
				"log.file.fileName":  "app.conf",
			},
			want: "/etc/app/app.conf",
		},
		{
			name: "AllComponentsApplyInOrder",
			entries: map[string]string{
				"log.file":           "/var/log/app.txt",
				"log.file.directory": "/srv",
				"log.file.baseName":  "svc",
				"log.file.extension": "log",
				"log.file.fileName":  "final.out",
			},
			want: "/srv/final.out",
		},
		{
			name:    "BareFileNameHasNoDirectory",
			entries: map[string]string{"log.file.fileName": "app.conf"},
			want:    "app.conf",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			p, err := fetch(t, tc.entries)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}

	t.Run("NothingResolvesToNotFound", func(t *testing.T) {
		_, err := fetch(t, map[string]string{})
		var missing *NotFoundError
		require.ErrorAs(t, err, &missing)
		require.Len(t, missing.Keys, 5)
		assert.Equal(t, "log.file", missing.Keys[0].String())
		assert.Equal(t, "log.file.fileName", missing.Keys[4].String())
		assert.Equal(t, "config.Pathname", missing.Type)
	})

	t.Run("OptionalPathname", func(t *testing.T) {
		v, err := Fetch[Option[Pathname]](New(NewNullProvider()), ParseKey("log.file"))
		require.NoError(t, err)
		assert.False(t, v.IsSome())
	})

	t.Run("DefaultBasePath", func(t *testing.T) {
		cfg := New(NewMapProvider(map[string]string{
			"log.file.extension": "log",
		})).WithDefault(ParseKey("log.file"), "/var/log/app.txt")
		p, err := Fetch[Pathname](cfg, ParseKey("log.file"))
		require.NoError(t, err)
		assert.Equal(t, Pathname("/var/log/app.log"), p)
	})
}
