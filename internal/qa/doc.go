// Package qa drives question/answer pair generation over a document.
// The chunked orchestrator splits long text into overlapping chunks,
// issues one generation request per chunk, deduplicates pairs across
// chunks and retries failed chunks under bounded budgets. Processing
// is synchronous and sequential: one request in flight at a time, one
// session per invocation, no state shared across callers.
package qa
