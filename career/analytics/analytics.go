// Package analytics computes salary and posting statistics over job
// listings supplied by the client.
package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/careergist/careergist/career/skills"
)

// Top-N cutoffs for the grouped counts
const (
	TopLocationCount = 5
	CommonTitleCount = 7
)

// JobPosting is a single job listing submitted for analysis. Salary
// bounds are optional since many boards omit them.
type JobPosting struct {
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	SalaryMin *float64 `json:"salary_min"`
	SalaryMax *float64 `json:"salary_max"`
}

// SalarySummary aggregates salary midpoints and posting frequency
type SalarySummary struct {
	AverageSalary float64        `json:"average_salary"`
	TopLocations  map[string]int `json:"top_locations"`
	CommonTitles  map[string]int `json:"common_titles"`
}

// midpoint averages whichever salary bounds are present. Postings with
// no bounds at all contribute nothing.
func midpoint(job JobPosting) (float64, bool) {
	switch {
	case job.SalaryMin != nil && job.SalaryMax != nil:
		return (*job.SalaryMin + *job.SalaryMax) / 2, true
	case job.SalaryMin != nil:
		return *job.SalaryMin, true
	case job.SalaryMax != nil:
		return *job.SalaryMax, true
	default:
		return 0, false
	}
}

// Summarize computes the average salary midpoint and the most frequent
// locations and titles across the given postings.
func Summarize(jobs []JobPosting) (*SalarySummary, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobData()
	}

	var sum float64
	var counted int
	locations := make(map[string]int)
	titles := make(map[string]int)

	for _, job := range jobs {
		if mid, ok := midpoint(job); ok {
			sum += mid
			counted++
		}
		if loc := normalizeLabel(job.Location); loc != "" {
			locations[loc]++
		}
		if title := normalizeLabel(job.Title); title != "" {
			titles[title]++
		}
	}

	var average float64
	if counted > 0 {
		average = math.Round(sum/float64(counted)*100) / 100
	}

	return &SalarySummary{
		AverageSalary: average,
		TopLocations:  topN(locations, TopLocationCount),
		CommonTitles:  topN(titles, CommonTitleCount),
	}, nil
}

func normalizeLabel(s string) string {
	return skills.TitleCase(strings.TrimSpace(s))
}

// topN keeps the n highest counts, breaking ties by label so the result
// is stable across runs.
func topN(counts map[string]int, n int) map[string]int {
	type entry struct {
		label string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, entry{label, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].label < entries[j].label
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	top := make(map[string]int, len(entries))
	for _, e := range entries {
		top[e.label] = e.count
	}
	return top
}
