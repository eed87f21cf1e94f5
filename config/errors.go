package config

import "fmt"

// ConfigurationError reports a missing or invalid animation definition.
// It is fatal when raised while loading the scene.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("animation config: %s", e.Reason)
	}
	return fmt.Sprintf("animation config: %s: %s", e.Key, e.Reason)
}

func configErrorf(key, format string, args ...any) error {
	return &ConfigurationError{Key: key, Reason: fmt.Sprintf(format, args...)}
}
