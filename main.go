package main

import (
	"captive-portal/internal/config"
	"captive-portal/internal/server"
	"captive-portal/internal/version"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "path to an optional YAML config file")
	flag.StringVar(&configPath, "c", "", "path to an optional YAML config file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Fprintln(os.Stdout, version.GetFullVersion())
		return
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
