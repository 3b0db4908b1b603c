package skills

import (
	"regexp"
	"strings"
)

// Resumes sometimes arrive wrapped in a markdown code fence (the vision
// importer and some clients do this); unwrap before looking for headings.
var fenceRe = regexp.MustCompile("(?s)```markdown\\s*\\n(.*?)\\n```")

// ExtractSection isolates the body of the first markdown section whose
// heading matches header (case-insensitive). A heading is one to six '#'
// characters or a bolded line, with an optional colon. The body runs up to
// the next heading of any level, or the end of the document.
//
// A missing section returns ""; callers must treat that as "none
// declared", not as an error.
func ExtractSection(document, header string) string {
	if m := fenceRe.FindStringSubmatch(document); m != nil {
		document = m[1]
	}

	re := regexp.MustCompile(
		`(?is)(?:^|\n)(?:#{1,6}|\*\*)\s*` + regexp.QuoteMeta(header) +
			`[:\s]*\**[ \t]*\n(.*?)(?:\n(?:#{1,6}[ \t#]|\*\*)|\z)`,
	)
	m := re.FindStringSubmatch(document)
	if m == nil {
		return ""
	}
	return strings.Trim(m[1], " \n*")
}
