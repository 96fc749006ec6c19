package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const exampleText = `Artificial Intelligence: An Overview

Artificial intelligence (AI) is a field of computer science focused on
creating systems capable of performing tasks that normally require
human intelligence.

History of AI
The term "artificial intelligence" was coined in 1956 during the
Dartmouth conference. Since then the field has gone through several
periods of enthusiasm and so-called "AI winters".

Modern Applications
Today AI is used across many sectors:
- Voice assistants such as Siri and Alexa
- Recommendation systems on Netflix and Amazon
- Autonomous vehicles
- Computer-assisted medical diagnosis
- Machine translation

Machine Learning
Machine learning is a subfield of AI that lets computers learn from
data without being explicitly programmed. It includes techniques such
as neural networks and deep learning.

Ethical Challenges
AI raises important ethical questions about privacy, algorithmic bias
and the impact on the labor market.`

// EnsureExample writes a small example document to path when no file
// exists there yet, so a fresh deployment has something to answer
// questions about. An existing file is left untouched.
func EnsureExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)

	for _, line := range strings.Split(exampleText, "\n") {
		doc.MultiCell(0, 6, strings.TrimSpace(line), "", "L", false)
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write example document to %s: %w", path, err)
	}
	return nil
}
