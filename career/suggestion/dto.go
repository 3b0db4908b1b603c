package suggestion

// SuggestRequest is the career-suggestion request body
type SuggestRequest struct {
	Resume string `json:"resume"`
}

// SuggestResponse is the career-suggestion response payload. Also the
// cached representation; cache entries round-trip through this struct.
type SuggestResponse struct {
	SkillsExtracted []string    `json:"skillsExtracted"`
	SuggestedRoles  []RoleMatch `json:"suggestedRoles"`
}
