package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document holds the raw text extracted from a source file. It is
// immutable once created: the extraction layer owns it and the
// generation core only reads it.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Source      string    `json:"source"`
	Text        string    `json:"-"`
	PageCount   int       `json:"page_count"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// NewDocument creates a Document from extracted text.
// Returns an error if the text is empty.
func NewDocument(source, text string, pageCount int) (*Document, error) {
	if text == "" {
		return nil, ErrEmptyDocument
	}

	return &Document{
		ID:          uuid.New(),
		Source:      source,
		Text:        text,
		PageCount:   pageCount,
		ExtractedAt: time.Now().UTC(),
	}, nil
}

// Length returns the document text length in bytes.
func (d *Document) Length() int {
	return len(d.Text)
}
