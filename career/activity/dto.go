package activity

import "github.com/careergist/careergist/career/resume"

// CreateFavoriteRequest is the favorite-creation body
type CreateFavoriteRequest struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	JobID       string   `json:"jobId"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	SalaryMin   *float64 `json:"salaryMin"`
	SalaryMax   *float64 `json:"salaryMax"`
}

// LogSearchRequest is the search-logging body
type LogSearchRequest struct {
	Query string `json:"query"`
}

// DashboardResponse aggregates a user's resumes, favorites and the
// keywords distilled from their activity
type DashboardResponse struct {
	UserName string          `json:"userName"`
	Resumes  []resume.Resume `json:"resumes"`
	Favorite []FavoriteJob   `json:"favorites"`

	// Keywords extracted from favorited and searched job titles
	Keywords []string `json:"keywords"`

	// Resume skills that overlap the user's interest keywords
	ResumeKeywords []string `json:"resumeKeywords"`

	// Raw search-bar entries, newest first
	SearchTerms []string `json:"searchTerms"`
}
