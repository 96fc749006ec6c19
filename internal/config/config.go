package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Document   DocumentConfig   `mapstructure:"document"   validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Chunking   ChunkingConfig   `mapstructure:"chunking"   validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DocumentConfig describes the source document the service answers
// about and whether to materialize an example document when the
// configured file is missing.
type DocumentConfig struct {
	Path          string `mapstructure:"path" validate:"required"`
	CreateExample bool   `mapstructure:"create_example"`
}

// LLMConfig contains all model provider integration settings.
type LLMConfig struct {
	// Provider selects the generation client implementation.
	Provider string `mapstructure:"provider" validate:"required,oneof=anthropic gemini"`

	AnthropicAPIKey string `mapstructure:"anthropic_api_key" validate:"required_if=Provider anthropic"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"    validate:"required_if=Provider gemini"`

	ModelName string `mapstructure:"model_name" validate:"required"`
	MaxTokens int    `mapstructure:"max_tokens" validate:"required,gt=0"`

	// RequestTimeoutSeconds bounds one provider exchange. A call that
	// outlives it counts as a failed attempt for its chunk.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}

// ChunkingConfig controls how long documents are split for the
// chunked generation path.
type ChunkingConfig struct {
	MaxChunkSize int `mapstructure:"max_chunk_size" validate:"required,gt=0,gtfield=Overlap"`
	Overlap      int `mapstructure:"overlap"        validate:"gte=0"`
	MaxChunks    int `mapstructure:"max_chunks"     validate:"required,gt=0"`
}

// GenerationConfig controls orchestration policy: retry budgets,
// per-chunk caps and pacing between provider calls.
type GenerationConfig struct {
	DefaultPairCount int `mapstructure:"default_pair_count" validate:"required,gt=0"`

	// MaxPairsPerChunk caps how many pairs a single chunk request may
	// ask for, regardless of the remaining global target.
	MaxPairsPerChunk int `mapstructure:"max_pairs_per_chunk" validate:"required,gt=0"`

	// ChunkRetries is the per-chunk retry limit: each chunk is
	// attempted at most ChunkRetries+1 times.
	ChunkRetries int `mapstructure:"chunk_retries" validate:"gte=0"`

	MaxRetryWaitSeconds int `mapstructure:"max_retry_wait_seconds" validate:"gte=0"`
	CallDelayMillis     int `mapstructure:"call_delay_millis"      validate:"gte=0"`
}
