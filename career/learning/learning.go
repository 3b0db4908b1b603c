// Package learning recommends online courses matched to the skills in a
// user's resume.
package learning

import (
	"encoding/json"
	"strings"
)

const (
	// SkillsPerQuery is how many skills are combined into one course search
	SkillsPerQuery = 2
	// MaxQueries caps the number of provider searches per request
	MaxQueries = 6
	// MaxCourses caps the number of courses returned
	MaxCourses = 10
	// MaxRelevantSkills bounds how many extracted skills feed the queries
	MaxRelevantSkills = 12
	// DescriptionCap is the soft limit on course descriptions
	DescriptionCap = 1000
	// SummaryCap is the hard limit on condensed summaries
	SummaryCap = 500

	// FallbackSummary is used when no condensed summary could be produced
	FallbackSummary = "No condensed summary available."
)

// Course is a single recommended course
type Course struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription"`
	URL              string `json:"url"`
	Platform         string `json:"platform"`
}

// RotateQueries groups skills into search queries so that a single
// request spreads across several skills instead of searching each one
// individually. The input order decides the grouping; callers shuffle
// first if they want variety. An empty input yields no queries.
func RotateQueries(skillList []string, perQuery, maxQueries int) []string {
	if len(skillList) == 0 || perQuery <= 0 || maxQueries <= 0 {
		return nil
	}

	queries := make([]string, 0, maxQueries)
	for start := 0; start < len(skillList) && len(queries) < maxQueries; start += perQuery {
		end := start + perQuery
		if end > len(skillList) {
			end = len(skillList)
		}
		queries = append(queries, strings.Join(skillList[start:end], " "))
	}
	return queries
}

// CapDescription trims a description to roughly limit characters,
// preferring a sentence boundary so the text does not end mid-thought.
func CapDescription(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}

	cut := text[:limit]
	if idx := strings.LastIndex(cut, ". "); idx > 0 {
		return cut[:idx+1]
	}
	return strings.TrimSpace(cut)
}

// TruncateSummary hard-caps a summary at limit characters, cutting at a
// word boundary and appending an ellipsis.
func TruncateSummary(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}

	cut := text[:limit]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut) + "..."
}

// ParseSummary pulls the condensed summary out of a generated reply.
// The model is asked for a JSON object but often wraps it in prose, so
// the object is located positionally before decoding.
func ParseSummary(reply string) (string, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return "", false
	}

	var payload struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), &payload); err != nil {
		return "", false
	}

	summary := strings.TrimSpace(payload.Summary)
	if summary == "" {
		return "", false
	}
	return summary, true
}
