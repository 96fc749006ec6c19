// Package config defines the application configuration structure and
// loading. Values come from an optional config file and environment
// variables with the RAGQA_ prefix; environment variables take
// precedence. Loaded configuration is validated before use.
package config
