package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config file (config.yaml
// in the working directory) and environment variables with the RAGQA_
// prefix. Environment variables take precedence over file values.
// Returns a populated Config or an error if loading or validation
// fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults carry it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("RAGQA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not register keys for Unmarshal; bind the ones
	// we care about explicitly.
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

var configKeys = []string{
	"server.port",
	"server.log_level",
	"document.path",
	"document.create_example",
	"llm.provider",
	"llm.anthropic_api_key",
	"llm.gemini_api_key",
	"llm.model_name",
	"llm.max_tokens",
	"llm.request_timeout_seconds",
	"chunking.max_chunk_size",
	"chunking.overlap",
	"chunking.max_chunks",
	"generation.default_pair_count",
	"generation.max_pairs_per_chunk",
	"generation.chunk_retries",
	"generation.max_retry_wait_seconds",
	"generation.call_delay_millis",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("document.path", "./example_document.pdf")
	v.SetDefault("document.create_example", true)

	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.model_name", "claude-sonnet-4-20250514")
	v.SetDefault("llm.max_tokens", 2000)
	v.SetDefault("llm.request_timeout_seconds", 60)

	v.SetDefault("chunking.max_chunk_size", 8000)
	v.SetDefault("chunking.overlap", 200)
	v.SetDefault("chunking.max_chunks", 100)

	v.SetDefault("generation.default_pair_count", 5)
	v.SetDefault("generation.max_pairs_per_chunk", 3)
	v.SetDefault("generation.chunk_retries", 2)
	v.SetDefault("generation.max_retry_wait_seconds", 10)
	v.SetDefault("generation.call_delay_millis", 500)
}
