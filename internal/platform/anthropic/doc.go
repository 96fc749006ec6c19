// Package anthropic implements the generation.Client interface using
// the Anthropic Messages API.
package anthropic
