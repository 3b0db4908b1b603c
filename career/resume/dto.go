package resume

// CreateResumeRequest is the manual resume-creation body
type CreateResumeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateResumeRequest is the resume-update body
type UpdateResumeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
