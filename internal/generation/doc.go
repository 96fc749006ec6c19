// Package generation defines the boundary between the Q&A core and
// external LLM providers. It abstracts the details of provider API
// integration (Anthropic, Gemini), allowing the orchestrator to issue
// generation requests without coupling to a specific provider's
// request/response schema.
package generation
