package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careergist/careergist/career/analytics"
	"github.com/careergist/careergist/pkg/errx"
)

func fptr(v float64) *float64 { return &v }

func TestSummarize(t *testing.T) {
	jobs := []analytics.JobPosting{
		{Title: "software engineer", Location: " austin ", SalaryMin: fptr(100000), SalaryMax: fptr(140000)},
		{Title: "Software Engineer", Location: "Austin", SalaryMin: fptr(90000), SalaryMax: fptr(110000)},
		{Title: "data analyst", Location: "remote"},
	}

	summary, err := analytics.Summarize(jobs)
	require.NoError(t, err)

	// midpoints 120000 and 100000; the posting without bounds is skipped
	assert.Equal(t, 110000.0, summary.AverageSalary)
	assert.Equal(t, map[string]int{"Austin": 2, "Remote": 1}, summary.TopLocations)
	assert.Equal(t, map[string]int{"Software Engineer": 2, "Data Analyst": 1}, summary.CommonTitles)
}

func TestSummarizeSingleBound(t *testing.T) {
	jobs := []analytics.JobPosting{
		{Title: "DevOps Engineer", Location: "Denver", SalaryMin: fptr(120000)},
		{Title: "DevOps Engineer", Location: "Denver", SalaryMax: fptr(80000)},
	}

	summary, err := analytics.Summarize(jobs)
	require.NoError(t, err)
	assert.Equal(t, 100000.0, summary.AverageSalary)
}

func TestSummarizeRounding(t *testing.T) {
	jobs := []analytics.JobPosting{
		{Title: "QA", Location: "Boston", SalaryMin: fptr(100000), SalaryMax: fptr(100001)},
	}

	summary, err := analytics.Summarize(jobs)
	require.NoError(t, err)
	assert.Equal(t, 100000.5, summary.AverageSalary)
}

func TestSummarizeNoSalaryData(t *testing.T) {
	jobs := []analytics.JobPosting{
		{Title: "Writer", Location: "Chicago"},
	}

	summary, err := analytics.Summarize(jobs)
	require.NoError(t, err)
	assert.Zero(t, summary.AverageSalary)
	assert.Equal(t, map[string]int{"Chicago": 1}, summary.TopLocations)
}

func TestSummarizeEmpty(t *testing.T) {
	summary, err := analytics.Summarize(nil)
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
}

func TestSummarizeTopNCutoff(t *testing.T) {
	jobs := make([]analytics.JobPosting, 0, 12)
	locations := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, loc := range locations {
		// location i appears i+1 times
		for j := 0; j <= i; j++ {
			jobs = append(jobs, analytics.JobPosting{Title: "Engineer", Location: loc})
		}
	}

	summary, err := analytics.Summarize(jobs)
	require.NoError(t, err)
	assert.Len(t, summary.TopLocations, analytics.TopLocationCount)
	assert.Equal(t, map[string]int{"G": 7, "F": 6, "E": 5, "D": 4, "C": 3}, summary.TopLocations)
}
