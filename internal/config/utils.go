package config

import (
	"fmt"
	"net/url"
	"path/filepath"
)

func validateURL(urlStr, fieldName string) error {
	if urlStr == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s must have http or https scheme", fieldName)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s must include a host", fieldName)
	}

	return nil
}

// Path returns the location of the submissions file.
func (s StorageConfig) Path() string {
	return filepath.Join(s.Directory, s.FileName)
}
