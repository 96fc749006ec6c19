// Package mocks provides hand-rolled test doubles for the
// application's collaborator interfaces.
package mocks
