// Package api contains the HTTP handlers and request/response models
// for the Q&A generation endpoints. Handlers translate HTTP concerns
// into service calls and map service errors back to status codes;
// generation semantics live below in internal/qa.
package api
