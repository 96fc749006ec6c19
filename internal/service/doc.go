// Package service wires the loaded document and the generation core
// into the operations the API layer exposes. Each request gets its own
// generation session; the service itself holds only immutable state.
package service
