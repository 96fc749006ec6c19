package pdf

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/ragqa/ragqa-api/internal/domain"
)

// Extract reads every page of the PDF at path and returns the
// concatenated plain text as an immutable Document. Each page is
// preceded by a page marker so downstream text keeps a trace of the
// original layout.
func Extract(path string) (*domain.Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	pages := r.NumPage()

	for n := 1; n <= pages; n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d of %s: %w", n, path, err)
		}

		fmt.Fprintf(&b, "\n--- Page %d ---\n", n)
		b.WriteString(text)
	}

	doc, err := domain.NewDocument(path, b.String(), pages)
	if err != nil {
		return nil, fmt.Errorf("no extractable text in %s: %w", path, err)
	}

	return doc, nil
}
