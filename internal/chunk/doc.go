// Package chunk splits raw document text into bounded, overlapping
// segments suitable for one generation request each. Splitting is a
// pure function of its inputs and prefers natural boundaries
// (paragraph breaks, then sentence ends, then whitespace) over hard
// cuts.
package chunk
