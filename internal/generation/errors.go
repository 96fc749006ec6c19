package generation

import "errors"

// Classified failures returned by Client implementations. The
// orchestrator's retry policy keys off these via errors.Is; the client
// itself never retries.
var (
	// ErrTimeout is returned when the provider produced no response
	// within the configured per-call timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrTransport is returned for network or connection failures
	// before a provider response was received.
	ErrTransport = errors.New("transport failure during generation request")

	// ErrRateLimited is returned when the provider signals throttling.
	// Kept distinct so the orchestrator can back off before retrying
	// instead of treating it as fatal.
	ErrRateLimited = errors.New("provider rate limit exceeded")

	// ErrProvider is returned for any other unsuccessful provider
	// response.
	ErrProvider = errors.New("provider returned an error response")

	// ErrGenerationFailed is returned by the single-pass path, which
	// has no retry fallback, when the client call fails outright.
	ErrGenerationFailed = errors.New("failed to generate Q&A pairs")

	// ErrInvalidConfig is returned when a client is constructed with
	// invalid configuration.
	ErrInvalidConfig = errors.New("invalid generation client configuration")
)
