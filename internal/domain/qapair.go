package domain

import "strings"

// QAPair is a single question paired with its answer, the unit of
// generation output. Both sides are non-empty after trimming.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewQAPair creates a QAPair from raw question and answer text,
// trimming surrounding whitespace. Returns an error if either side
// is empty after trimming.
func NewQAPair(question, answer string) (QAPair, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	if question == "" {
		return QAPair{}, ErrEmptyQuestion
	}
	if answer == "" {
		return QAPair{}, ErrEmptyAnswer
	}

	return QAPair{Question: question, Answer: answer}, nil
}

// NormalizedQuestion returns the question text case-folded with all
// whitespace runs collapsed to single spaces. Two pairs are considered
// duplicates when their normalized questions match.
func (p QAPair) NormalizedQuestion() string {
	return strings.Join(strings.Fields(strings.ToLower(p.Question)), " ")
}
