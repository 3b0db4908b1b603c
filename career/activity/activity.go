// Package activity tracks what a user does with job postings: favoriting
// jobs and logging searches. The dashboard distills that activity into
// interest keywords.
package activity

import (
	"time"

	"github.com/careergist/careergist/pkg/kernel"
)

// FavoriteJob is a job posting the user saved
type FavoriteJob struct {
	ID          kernel.FavoriteID `json:"id"`
	UserID      kernel.UserID     `json:"userId"`
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	ExternalID  string            `json:"jobId,omitempty"`
	Location    string            `json:"location,omitempty"`
	Description string            `json:"description,omitempty"`
	SalaryMin   *float64          `json:"salaryMin,omitempty"`
	SalaryMax   *float64          `json:"salaryMax,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// IsOwnedBy checks favorite ownership
func (f *FavoriteJob) IsOwnedBy(userID kernel.UserID) bool {
	return f.UserID == userID
}

// SearchTerm is one logged search-bar entry
type SearchTerm struct {
	ID        kernel.SearchTermID `json:"id"`
	UserID    kernel.UserID       `json:"userId"`
	Query     string              `json:"query"`
	CreatedAt time.Time           `json:"createdAt"`
}
