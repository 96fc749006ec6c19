// Package pdf is the document extraction boundary: it turns a PDF
// file into the plain text the generation core works on, and can
// materialize a small example document so the service starts cold.
// The core never sees this package, only the domain.Document it
// produces.
package pdf
