// File: config/pathname.go
package config

import (
	"path/filepath"
	"strings"
)

// Pathname is a file-system path assembled from optional components.
//
// Decoding reads an optional base path at the key itself plus four
// optional string components under it: "directory", "baseName",
// "extension", and "fileName". Components replace the corresponding
// part of the base path in that order, so a base of
// "/var/log/app.txt" with extension "log" decodes to
// "/var/log/app.log". An empty result fails with a NotFoundError
// listing every candidate key.
type Pathname string

// String returns the rendered path.
func (p Pathname) String() string {
	return string(p)
}

// UnmarshalConfig implements the Unmarshaler interface.
func (p *Pathname) UnmarshalConfig(cfg *Config, key Key) error {
	componentKeys := []Key{
		key,
		key.Child("directory"),
		key.Child("baseName"),
		key.Child("extension"),
		key.Child("fileName"),
	}

	components := make([]Option[string], len(componentKeys))
	for i, ck := range componentKeys {
		if err := components[i].UnmarshalConfig(cfg, ck); err != nil {
			return err
		}
	}

	// The directory and file-name parts compose independently, so a
	// replaced directory never swallows a later file-name component.
	dir, name := splitPath(components[0].OrElse(""))
	if d, ok := components[1].Get(); ok {
		dir = d
	}
	if base, ok := components[2].Get(); ok {
		name = base + filepath.Ext(name)
	}
	if ext, ok := components[3].Get(); ok {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ext
	}
	if n, ok := components[4].Get(); ok {
		name = n
	}

	path := name
	if dir != "" {
		path = filepath.Join(dir, name)
	}
	if path == "" {
		return &NotFoundError{Keys: componentKeys, Type: "config.Pathname"}
	}
	*p = Pathname(path)
	return nil
}

// splitPath separates a path into its directory and file-name parts.
// Unlike filepath.Dir it reports an empty directory for a bare file
// name, and an empty path splits into two empty parts.
func splitPath(path string) (dir, name string) {
	if path == "" {
		return "", ""
	}
	dir, name = filepath.Split(path)
	dir = strings.TrimSuffix(dir, string(filepath.Separator))
	if dir == "" && strings.HasPrefix(path, string(filepath.Separator)) {
		dir = string(filepath.Separator)
	}
	return dir, name
}
