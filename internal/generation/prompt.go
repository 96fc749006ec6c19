package generation

import (
	"bytes"
	"fmt"
	"text/template"
)

// DefaultPromptTemplate is the prompt used when a request does not
// carry its own template. It pins the output format the parser
// recognizes.
const DefaultPromptTemplate = `Analyze the following document and generate {{.PairCount}} question and answer pairs.

The questions must be relevant and cover the key concepts of the document.
The answers must be accurate and based exclusively on the document content.

Format the output as:

Q1: [question]
A1: [answer]

Q2: [question]
A2: [answer]

Document:
{{.Text}}
`

// BuildPrompt renders the prompt for one generation request.
func BuildPrompt(req Request) (string, error) {
	text := req.Template
	if text == "" {
		text = DefaultPromptTemplate
	}

	tmpl, err := template.New("qa").Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
