package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort   = 16181
	defaultFormat = "text"
)

// Environment overrides
const (
	EnvPort         = "CATALOGUE_PORT"
	EnvBaseRequests = "CATALOGUE_BASE_REQUESTS"
	EnvFormat       = "CATALOGUE_FORMAT"
)

// Config is the global application configuration
var Config = Default()

// DefaultPaths are searched in order by LoadAppConfig
var DefaultPaths = []string{"config.yml"}

// Default returns the configuration used when no file is present
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: defaultPort},
		Output: OutputConfig{Format: defaultFormat},
	}
}

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	return LoadAppConfigFrom(DefaultPaths...)
}

// LoadAppConfigFrom loads the first readable file among paths. A .env file in
// the working directory, if any, is loaded into the environment first.
func LoadAppConfigFrom(paths ...string) error {
	_ = godotenv.Load()

	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse decodes YAML, applies environment overrides and defaults, then validates.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = defaultFormat
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags. Callers that change a loaded
// configuration, such as command-line overrides, must validate it again.
func Validate(cfg AppConfig) error {
	return validator.New().Struct(cfg)
}

// FromEnv returns the defaults with environment overrides applied, for runs
// without a config file.
func FromEnv() (AppConfig, error) {
	_ = godotenv.Load()
	cfg := Default()
	if err := applyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvBaseRequests); v != "" {
		cfg.Input.BaseRequestsPath = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Output.Format = v
	}
	return nil
}
