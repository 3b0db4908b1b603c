package analytics

// SalarySummaryRequest is the salary-summary request body
type SalarySummaryRequest struct {
	Jobs []JobPosting `json:"jobs"`
}
