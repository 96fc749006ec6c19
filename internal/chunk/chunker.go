package chunk

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/ragqa/ragqa-api/internal/domain"
)

// Chunk is a contiguous substring of the source text. Start and End
// are byte offsets into the original text; consecutive chunks may
// overlap by up to the configured overlap amount.
type Chunk struct {
	Text  string
	Start int
	End   int
	Index int
}

// Overlap returns how many bytes at the front of this chunk are shared
// with the previous chunk. Zero for the first chunk.
func (c Chunk) Overlap(prev Chunk) int {
	if c.Start >= prev.End {
		return 0
	}
	return prev.End - c.Start
}

// Split divides text into chunks of at most maxSize bytes, with
// consecutive chunks overlapping by approximately overlap bytes.
// Boundaries prefer a paragraph break, then a sentence end, then
// whitespace, all within a lookback window; only when none exists does
// the chunk end on a hard cut. maxChunks caps the number of chunks
// produced; zero or negative means no cap.
//
// The produced chunks cover every byte of text, and concatenating them
// with each chunk's overlap trimmed reconstructs text exactly.
func Split(text string, maxSize, overlap, maxChunks int) ([]Chunk, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrConfiguration, maxSize)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: overlap must not be negative, got %d", domain.ErrConfiguration, overlap)
	}
	if maxSize <= overlap {
		return nil, fmt.Errorf("%w: chunk size %d must exceed overlap %d", domain.ErrConfiguration, maxSize, overlap)
	}

	if text == "" {
		return nil, nil
	}

	// How far back from the tentative cut we are willing to look for a
	// natural boundary before giving up and cutting hard.
	lookback := maxSize / 2
	if lookback < 1 {
		lookback = 1
	}

	var chunks []Chunk
	start := 0

	for start < len(text) {
		if maxChunks > 0 && len(chunks) >= maxChunks {
			break
		}

		end := start + maxSize
		if end >= len(text) {
			end = len(text)
		} else {
			end = boundary(text, start, end, lookback)
		}

		chunks = append(chunks, Chunk{
			Text:  text[start:end],
			Start: start,
			End:   end,
			Index: len(chunks),
		})

		if end >= len(text) {
			break
		}

		// Step forward, keeping the configured overlap. The start+1
		// floor guarantees progress even when overlap would swallow
		// the whole previous chunk.
		next := end - overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return chunks, nil
}

// boundary picks the cut position for a chunk spanning [start, limit).
// It returns the end of the best natural break found within the
// lookback window, or limit when none exists.
func boundary(text string, start, limit, lookback int) int {
	floor := limit - lookback
	if floor < start+1 {
		floor = start + 1
	}

	// Don't split a multi-byte rune at a hard cut.
	limit = runeFloor(text, limit)
	if limit <= floor {
		return limit
	}

	if p := paragraphBreak(text, floor, limit); p > 0 {
		return p
	}
	if p := sentenceBreak(text, floor, limit); p > 0 {
		return p
	}
	if p := whitespaceBreak(text, floor, limit); p > 0 {
		return p
	}
	return limit
}

// paragraphBreak returns the position just after the last blank-line
// separator in [floor, limit), or 0 when there is none.
func paragraphBreak(text string, floor, limit int) int {
	for i := limit - 2; i >= floor; i-- {
		if text[i] == '\n' && text[i+1] == '\n' {
			return i + 2
		}
	}
	return 0
}

// sentenceBreak returns the position just after the last sentence
// terminator in [floor, limit) that is followed by whitespace or the
// cut itself, or 0 when there is none.
func sentenceBreak(text string, floor, limit int) int {
	for i := limit - 1; i >= floor; i-- {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if i+1 >= len(text) {
			return i + 1
		}
		if next, _ := utf8.DecodeRuneInString(text[i+1:]); unicode.IsSpace(next) {
			return i + 1
		}
	}
	return 0
}

// whitespaceBreak returns the position just after the last whitespace
// byte in [floor, limit), or 0 when there is none.
func whitespaceBreak(text string, floor, limit int) int {
	for i := limit - 1; i >= floor; i-- {
		if text[i] == ' ' || text[i] == '\n' || text[i] == '\t' || text[i] == '\r' {
			return i + 1
		}
	}
	return 0
}

// runeFloor moves pos backwards to the nearest rune start.
func runeFloor(text string, pos int) int {
	for pos > 0 && pos < len(text) && !utf8.RuneStart(text[pos]) {
		pos--
	}
	return pos
}
