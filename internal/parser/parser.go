package parser

import (
	"regexp"
	"strings"

	"github.com/ragqa/ragqa-api/internal/domain"
)

// Marker lines in the shape the generation prompt asks for, with the
// variance models actually produce: optional bold markers, optional
// numbering, and ':', '.', ')' or '-' as the separator.
// "Q1: text", "Question 2) text", "**A:** text" all match.
var (
	questionLine = regexp.MustCompile(`(?i)^\s*\*{0,2}(?:q|question)\s*\d*\s*[:.)\-]\s*\*{0,2}\s*(.*)$`)
	answerLine   = regexp.MustCompile(`(?i)^\s*\*{0,2}(?:a|answer)\s*\d*\s*[:.)\-]\s*\*{0,2}\s*(.*)$`)
)

// Parse extracts ordered question/answer pairs from raw completion
// text. It first scans for labeled Q/A marker lines; if none are
// found it falls back to an unlabeled format where a line ending in
// '?' opens a pair and the following lines answer it.
//
// A trailing pair whose answer never arrived (output truncated
// mid-generation) is discarded rather than emitted with an empty
// answer. Input with no recognizable pairs yields an empty slice.
func Parse(raw string) []domain.QAPair {
	pairs := parseLabeled(raw)
	if len(pairs) == 0 {
		pairs = parseUnlabeled(raw)
	}
	return pairs
}

func parseLabeled(raw string) []domain.QAPair {
	var pairs []domain.QAPair
	var question, answer []string
	inAnswer := false

	flush := func() {
		if len(question) == 0 || len(answer) == 0 {
			return
		}
		pair, err := domain.NewQAPair(strings.Join(question, " "), strings.Join(answer, " "))
		if err != nil {
			return
		}
		pairs = append(pairs, pair)
	}

	for _, line := range strings.Split(raw, "\n") {
		if m := questionLine.FindStringSubmatch(line); m != nil {
			flush()
			question = question[:0]
			answer = answer[:0]
			inAnswer = false
			if text := strings.TrimSpace(m[1]); text != "" {
				question = append(question, text)
			}
			continue
		}
		if m := answerLine.FindStringSubmatch(line); m != nil {
			inAnswer = true
			if text := strings.TrimSpace(m[1]); text != "" {
				answer = append(answer, text)
			}
			continue
		}

		// Continuation of a wrapped question or answer.
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if inAnswer && len(answer) > 0 {
			answer = append(answer, text)
		} else if !inAnswer && len(question) > 0 {
			question = append(question, text)
		}
	}
	flush()

	return pairs
}

// parseUnlabeled handles completions that skip the Q/A markers: a line
// ending in '?' is taken as a question and everything up to the next
// such line as its answer.
func parseUnlabeled(raw string) []domain.QAPair {
	var pairs []domain.QAPair
	var question string
	var answer []string

	flush := func() {
		if question == "" || len(answer) == 0 {
			return
		}
		pair, err := domain.NewQAPair(question, strings.Join(answer, " "))
		if err != nil {
			return
		}
		pairs = append(pairs, pair)
	}

	for _, line := range strings.Split(raw, "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		text = stripListMarker(text)

		if strings.HasSuffix(text, "?") {
			flush()
			question = text
			answer = answer[:0]
			continue
		}
		if question != "" {
			answer = append(answer, text)
		}
	}
	flush()

	return pairs
}

var listMarker = regexp.MustCompile(`^\d+\s*[:.)\-]\s*`)

func stripListMarker(line string) string {
	return listMarker.ReplaceAllString(line, "")
}
