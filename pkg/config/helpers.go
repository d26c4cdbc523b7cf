package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// SetValue sets a configuration value by key.
// Supported keys:
//   - catalog_path: string - Path to the local catalog file
//   - catalog_url: string - Remote catalog URL for sync
//   - cache_dir: string - Path to the cache directory
//   - state_dir: string - Path to the state directory
//   - install_dir: string - Base directory for zip app extraction
//   - http_timeout: duration - HTTP request timeout (e.g., 30s)
//   - max_concurrent_downloads: int - Parallel download limit
//   - output_format: string - Output format (text, json)
//   - log_level: string - Logging level (debug, info, warn, error)
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "catalog_path":
		c.Settings.CatalogPath = value
	case "catalog_url":
		c.Settings.CatalogURL = value
	case "cache_dir":
		c.Settings.CacheDir = value
	case "state_dir":
		c.Settings.StateDir = value
	case "install_dir":
		c.Settings.InstallDir = value
	case "http_timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		c.Settings.HTTPTimeout = timeout
	case "max_concurrent_downloads":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		c.Settings.MaxConcurrent = n
	case "output_format":
		c.Settings.OutputFormat = value
	case "log_level":
		c.Settings.LogLevel = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// GetValue returns the value of a configuration key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "catalog_path":
		return c.Settings.CatalogPath, nil
	case "catalog_url":
		return c.Settings.CatalogURL, nil
	case "cache_dir":
		return c.Settings.CacheDir, nil
	case "state_dir":
		return c.Settings.StateDir, nil
	case "install_dir":
		return c.Settings.InstallDir, nil
	case "http_timeout":
		return c.Settings.HTTPTimeout.String(), nil
	case "max_concurrent_downloads":
		return strconv.Itoa(c.Settings.MaxConcurrent), nil
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "log_level":
		return c.Settings.LogLevel, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// ToMap converts the settings to a flat string map keyed by yaml tag.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string)

	settingsValue := reflect.ValueOf(c.Settings)
	settingsType := settingsValue.Type()

	for i := 0; i < settingsValue.NumField(); i++ {
		field := settingsType.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}

		// Handle yaml tags with options (e.g., "cache_dir,omitempty")
		yamlKey := strings.Split(yamlTag, ",")[0]

		fieldValue := settingsValue.Field(i)
		var strValue string

		switch value := fieldValue.Interface().(type) {
		case time.Duration:
			strValue = value.String()
		case string:
			strValue = value
		case int:
			strValue = strconv.Itoa(value)
		case bool:
			strValue = strconv.FormatBool(value)
		default:
			strValue = fmt.Sprintf("%v", value)
		}

		result[yamlKey] = strValue
	}

	return result
}
