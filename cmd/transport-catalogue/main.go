package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	format := flag.String("format", "", "text|json (overrides config)")
	configPath := flag.String("config", "config.yml", "path to config.yml")
	baseRequests := flag.String("base", "", "base requests file for serve mode (overrides config)")
	flag.Parse()

	internal.InitLogging(os.Stderr)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg, err = applyFlags(cfg, *format, *baseRequests); err != nil {
		log.Fatalf("flags: %v", err)
	}

	switch *mode {
	case "oneshot":
		if err := runOneshot(os.Stdin, os.Stdout, cfg.Output.Format); err != nil {
			log.Fatalf("oneshot: %v", err)
		}
	case "serve":
		if err := runServe(cfg); err != nil {
			log.Fatalf("serve: %v", err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

// applyFlags overrides cfg with non-empty flag values and validates the result.
func applyFlags(cfg config.AppConfig, format, baseRequests string) (config.AppConfig, error) {
	if format != "" {
		cfg.Output.Format = format
	}
	if baseRequests != "" {
		cfg.Input.BaseRequestsPath = baseRequests
	}
	if err := config.Validate(cfg); err != nil {
		return config.AppConfig{}, err
	}
	return cfg, nil
}

// loadConfig reads the config file, falling back to defaults plus
// environment when the file does not exist.
func loadConfig(path string) (config.AppConfig, error) {
	err := config.LoadAppConfigFrom(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no config at %s, using defaults", path)
		return config.FromEnv()
	}
	if err != nil {
		return config.AppConfig{}, err
	}
	return config.Config, nil
}
