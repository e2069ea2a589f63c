package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0,lte=65535"`
	AllowedOrigins []string `yaml:"allowedOrigins" validate:"dive,required"`
}

// InputConfig points at the base requests loaded before serving
type InputConfig struct {
	BaseRequestsPath string `yaml:"baseRequests" validate:"omitempty"`
}

// OutputConfig controls how statistics are rendered
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}
