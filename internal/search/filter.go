// Package search implements the client-side job filtering engine: a pure
// predicate over the in-memory baseline plus a debounced recompute loop that
// drives it as the user edits criteria.
package search

import (
	"math"
	"strings"

	"github.com/jonathan/job-finder/internal/types"
)

// Criteria is the user's current search intent. Empty text fields and nil
// salary bounds match everything.
type Criteria struct {
	Keyword   string
	Location  string
	JobType   string
	SalaryMin *float64
	SalaryMax *float64
}

// Empty reports whether the criteria match every job unconditionally.
func (c Criteria) Empty() bool {
	return c.Keyword == "" && c.Location == "" && c.JobType == "" &&
		c.SalaryMin == nil && c.SalaryMax == nil
}

// Match reports whether job satisfies every field-level predicate.
//
// The salary predicate is containment, not overlap: the job's range must fit
// fully inside the requested range, with inclusive bounds. Missing job salary
// fields coerce to 0 (min) and +Inf (max).
func Match(job types.Job, c Criteria) bool {
	return matchKeyword(job, c.Keyword) &&
		containsFold(job.Location, c.Location) &&
		containsFold(job.Type, c.JobType) &&
		matchSalary(job.Salary, c.SalaryMin, c.SalaryMax)
}

// Filter returns the jobs matching c, preserving baseline order. The result
// is always a fresh slice; an empty result is non-nil.
func Filter(jobs []types.Job, c Criteria) []types.Job {
	out := make([]types.Job, 0, len(jobs))
	for _, job := range jobs {
		if Match(job, c) {
			out = append(out, job)
		}
	}
	return out
}

func matchKeyword(job types.Job, keyword string) bool {
	if keyword == "" {
		return true
	}
	return containsFold(job.Title, keyword) || containsFold(job.Company, keyword)
}

func matchSalary(s types.Salary, wantMin, wantMax *float64) bool {
	lo := 0.0
	if wantMin != nil {
		lo = *wantMin
	}
	hi := math.Inf(1)
	if wantMax != nil {
		hi = *wantMax
	}
	return s.MinOrZero() >= lo && s.MaxOrInf() <= hi
}

// containsFold is a case-insensitive substring test. An empty needle always
// matches.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
