// Package parser turns raw language-model output into structured
// question/answer pairs. Model output has no fixed schema, so parsing
// is tolerant and best-effort: unrecognizable input yields an empty
// result, never an error.
package parser
