package generation

import "context"

// Client performs a single request/response exchange with an external
// model provider. Implementations enforce the per-call timeout, make
// exactly one outbound call per invocation, and classify failures
// into the errors defined in this package. Retry policy lives in the
// orchestrator, not here, so it stays in one place.
//
// A malformed completion is not a failure of the call: the raw text is
// returned as-is and structuring it is the parser's concern.
type Client interface {
	// Generate submits one prompt-formatted request built from req and
	// returns the raw completion text.
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Request describes one generation exchange. It is stateless and
// constructed fresh per call.
type Request struct {
	// Text is the chunk text (or whole-document text for the
	// single-pass path) the questions must cover.
	Text string

	// PairCount is how many question/answer pairs to ask the model for.
	PairCount int

	// Template overrides DefaultPromptTemplate for this request when
	// non-empty. It is rendered with the whole Request as data.
	Template string
}

// Result is the successful outcome of one exchange: the raw completion
// text plus which model produced it. Failures are reported as
// classified errors, not as a status field.
type Result struct {
	RawText string
	Model   string
}
