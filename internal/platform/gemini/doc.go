// Package gemini implements the generation.Client interface using
// Google's Gemini API.
package gemini
