package config

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Portal  PortalConfig  `yaml:"portal"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
}

type ServerConfig struct {
	Port         int               `yaml:"port" env:"PORT"`
	PublicDir    string            `yaml:"public_dir" env:"PORTAL_PUBLIC_DIR"`
	MaxBodyBytes int64             `yaml:"max_body_bytes" env:"PORTAL_MAX_BODY_BYTES"`
	Debug        ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port:         3000,
	PublicDir:    "public",
	MaxBodyBytes: 1 << 20,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled" env:"PORTAL_DEBUG_ENABLED"`
	Host    string `yaml:"host" env:"PORTAL_DEBUG_HOST"`
	Port    int    `yaml:"port" env:"PORTAL_DEBUG_PORT"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// PortalConfig holds the captive portal flow settings.
type PortalConfig struct {
	// RedirectURL is where every submission is sent, whatever the outcome.
	RedirectURL string `yaml:"redirect_url" env:"PORTAL_REDIRECT_URL"`
}

var DefaultPortalConfig = PortalConfig{
	RedirectURL: "http://hotspot.cedarviewng.local",
}

type StorageConfig struct {
	Directory string `yaml:"directory" env:"PORTAL_DATA_DIR"`
	FileName  string `yaml:"file_name" env:"PORTAL_DATA_FILE"`
}

var DefaultStorageConfig = StorageConfig{
	Directory: "data",
	FileName:  "submissions.csv",
}

type LogConfig struct {
	Level  string `yaml:"level" env:"PORTAL_LOG_LEVEL"`
	Format string `yaml:"format" env:"PORTAL_LOG_FORMAT"`
	// File, when set, receives a JSON copy of every log record.
	File string `yaml:"file" env:"PORTAL_LOG_FILE"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"PORTAL_CORS_ALLOWED_ORIGINS"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	MaxAgeSeconds  int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders: []string{"Content-Type"},
	MaxAgeSeconds:  300,
}
