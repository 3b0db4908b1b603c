// Package interview generates practice interview questions for a job
// title using the text-generation service.
package interview

import (
	"regexp"
	"strings"
)

// DefaultQuestionCount is how many questions the prompt asks for
const DefaultQuestionCount = 5

// minQuestionLength filters out fragments the sentence regex picks up
const minQuestionLength = 20

var (
	questionRe  = regexp.MustCompile(`(.*?\?)`)
	markupRe    = regexp.MustCompile("[*_`#>-]")
	numberingRe = regexp.MustCompile(`\d+\.\s*`)
)

// ParseQuestions extracts clean question sentences from generated text.
// Markdown markup and list numbering are stripped; fragments shorter than
// a real question are dropped.
func ParseQuestions(raw string) []string {
	matches := questionRe.FindAllString(raw, -1)

	questions := make([]string, 0, len(matches))
	for _, m := range matches {
		cleaned := strings.TrimSpace(markupRe.ReplaceAllString(m, ""))
		cleaned = strings.TrimSpace(numberingRe.ReplaceAllString(cleaned, ""))
		if len(cleaned) > minQuestionLength {
			questions = append(questions, cleaned)
		}
	}
	return questions
}
