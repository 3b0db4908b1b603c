package suggestion

import (
	"sort"
	"strings"
	"time"

	"github.com/careergist/careergist/career/skills"
	"github.com/careergist/careergist/pkg/kernel"
)

// DefaultMatchLimit caps the number of suggested roles per request
const DefaultMatchLimit = 5

// FallbackExplanation replaces a role explanation when the text-generation
// collaborator is unavailable. Generation failures never fail the request.
const FallbackExplanation = "No explanation available right now."

// RoleRecord is one role-catalog entry. RequiredSkills must already be in
// normalized title-cased form (the catalog repository handles that).
type RoleRecord struct {
	RoleTitle      string
	RequiredSkills skills.SkillSet
}

// RoleMatch scores one catalog role against a user's skill set
type RoleMatch struct {
	RoleTitle     string  `json:"roleTitle"`
	MatchStrength int     `json:"matchStrength"`
	Ratio         float64 `json:"ratio"`
	Explanation   string  `json:"explanation,omitempty"`
}

// CareerSuggestion is one stored suggestion run for a user
type CareerSuggestion struct {
	ID              kernel.SuggestionID `json:"id"`
	UserID          kernel.UserID       `json:"userId"`
	SuggestedRoles  []string            `json:"suggestedRoles"`
	SkillsExtracted []string            `json:"skillsExtracted"`
	CreatedAt       time.Time           `json:"createdAt"`
}

// MatchRoles scores every catalog entry by skill-set intersection and
// returns the strongest matches, at most limit (DefaultMatchLimit when
// limit <= 0). Zero-overlap entries are excluded. Ordering is
// deterministic: descending strength, catalog order on ties. Entries with
// no required skills simply never match; they are not an error.
func MatchRoles(userSkills skills.SkillSet, catalog []RoleRecord, limit int) []RoleMatch {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	matches := make([]RoleMatch, 0, len(catalog))
	for _, rec := range catalog {
		overlap := len(userSkills.Intersect(rec.RequiredSkills))
		if overlap == 0 {
			continue
		}
		denom := len(rec.RequiredSkills)
		if denom == 0 {
			denom = 1
		}
		matches = append(matches, RoleMatch{
			RoleTitle:     rec.RoleTitle,
			MatchStrength: overlap,
			Ratio:         float64(overlap) / float64(denom),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchStrength > matches[j].MatchStrength
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// ParseExplanations extracts per-role explanations from a generated reply
// in the requested "1. Role: Explanation" list format. Lines that do not
// fit the format are ignored; callers fall back per-role when a title is
// missing from the result.
func ParseExplanations(reply string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] < '0' || line[0] > '9' {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		head := parts[0]
		if i := strings.Index(head, "."); i >= 0 {
			head = head[i+1:]
		}
		role := strings.TrimSpace(strings.Trim(strings.TrimSpace(head), "*[]"))
		explanation := strings.TrimSpace(parts[1])
		if role != "" && explanation != "" {
			out[role] = explanation
		}
	}
	return out
}
