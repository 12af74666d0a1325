package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the optional YAML file at configPath, applies environment
// overrides and fills in defaults. An empty configPath runs on defaults and
// environment alone.
func LoadConfig(configPath string) (*Config, error) {
	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvironmentOverrides(&config); err != nil {
		return nil, err
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func applyEnvironmentOverrides(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// Validate applies defaults and checks a config built in code rather than
// loaded through LoadConfig.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validatePortalConfig()
	if err != nil {
		return err
	}

	err = config.validateStorageConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.PublicDir == "" {
		c.Server.PublicDir = DefaultServerConfig.PublicDir
	}

	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = DefaultServerConfig.MaxBodyBytes
	}

	if c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
		if c.Server.Debug.Port == c.Server.Port {
			return fmt.Errorf("server.debug.port must differ from server.port (both are %d)", c.Server.Port)
		}
	}

	return nil
}

func (c *Config) validatePortalConfig() error {
	if c.Portal.RedirectURL == "" {
		c.Portal.RedirectURL = DefaultPortalConfig.RedirectURL
	}

	return validateURL(c.Portal.RedirectURL, "portal.redirect_url")
}

func (c *Config) validateStorageConfig() error {
	if c.Storage.Directory == "" {
		c.Storage.Directory = DefaultStorageConfig.Directory
	}

	if c.Storage.FileName == "" {
		c.Storage.FileName = DefaultStorageConfig.FileName
	}

	if strings.ContainsAny(c.Storage.FileName, `/\`) {
		return fmt.Errorf("storage.file_name must not contain path separators: %s", c.Storage.FileName)
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}
