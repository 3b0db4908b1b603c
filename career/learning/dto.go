package learning

// ResourcesRequest is the body for on-demand course recommendations
type ResourcesRequest struct {
	Resume string `json:"resume"`
}

// ResourcesResponse carries the recommended courses and the skills that
// drove the search
type ResourcesResponse struct {
	Courses         []Course `json:"courses"`
	SkillsExtracted []string `json:"skillsExtracted"`
}
