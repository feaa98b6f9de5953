// A small end-to-end tour of the library: a config file on disk,
// environment overrides, typed defaults, optional values, and
// composite path keys.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/halyard-io/config"
)

type ServerConfig struct {
	Host    string                `config:"host"`
	Port    int                   `config:"port"`
	Timeout time.Duration         `config:"timeout"`
	Motd    config.Option[string] `config:"motd"`
}

const configFilePath = "demo.toml"

func main() {
	if err := os.WriteFile(configFilePath, []byte(`
[server]
host = "0.0.0.0"
port = 8080

[log]
file = "/var/log/demo.txt"
`), 0o644); err != nil {
		log.Fatalf("write demo config: %v", err)
	}
	defer os.Remove(configFilePath)

	// Environment variables outrank the file; defaults fill the rest.
	os.Setenv("DEMO_SERVER_PORT", "9090")

	cfg, err := config.NewBuilder().
		WithEnv("DEMO_").
		WithFile(configFilePath).
		WithDefault("server.timeout", 15*time.Second).
		WithDefault("log.file.extension", "log").
		Build()
	if err != nil {
		log.Fatalf("build config: %v", err)
	}

	srv, err := config.Fetch[ServerConfig](cfg, config.ParseKey("server"))
	if err != nil {
		log.Fatalf("read server config: %v", err)
	}
	fmt.Printf("listen on %s:%d (timeout %s)\n", srv.Host, srv.Port, srv.Timeout)
	if motd, ok := srv.Motd.Get(); ok {
		fmt.Println("motd:", motd)
	} else {
		fmt.Println("no motd configured")
	}

	// The log file path is assembled from the base path in the file
	// plus the extension default above.
	logFile, err := config.Fetch[config.Pathname](cfg, config.ParseKey("log.file"))
	if err != nil {
		log.Fatalf("read log file path: %v", err)
	}
	fmt.Println("log file:", logFile)

	// Legacy key spellings can be aliased without touching callers.
	aliased := cfg.WithKeyMapping(config.ParseKey("srv"), config.ParseKey("server"))
	port, err := config.Fetch[int](aliased, config.ParseKey("srv.port"))
	if err != nil {
		log.Fatalf("read aliased port: %v", err)
	}
	fmt.Println("aliased srv.port:", port)

	// Snapshot materializes the merged subtree for quick inspection.
	snapshot := cfg.Snapshot(config.ParseKey("server"))
	fmt.Printf("server snapshot: %v\n", snapshot)
}
