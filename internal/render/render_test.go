package render

import (
	"strings"
	"testing"

	"github.com/jonathan/job-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionText_PlainTextPassesThrough(t *testing.T) {
	got := DescriptionText("  Build services in Go.  ")
	assert.Equal(t, "Build services in Go.", got)
}

func TestDescriptionText_StripsHTML(t *testing.T) {
	html := `<div><h2>About the role</h2><p>Build <b>services</b> in Go.</p>
	<script>alert("x")</script><ul><li>Ship weekly</li></ul></div>`

	got := DescriptionText(html)
	assert.Contains(t, got, "About the role")
	assert.Contains(t, got, "Build services in Go.")
	assert.Contains(t, got, "Ship weekly")
	assert.NotContains(t, got, "<p>")
	assert.NotContains(t, got, "alert")
}

func TestDescriptionText_CollapsesBlankLines(t *testing.T) {
	got := DescriptionText("<p>one</p>\n\n\n<p>two</p>")
	assert.Equal(t, "one\ntwo", got)
}

func TestPrintJobList_Empty(t *testing.T) {
	var sb strings.Builder
	NewPrinter(&sb).PrintJobList(nil)
	assert.Contains(t, sb.String(), NoResultsMessage)
}

func TestPrintJobList_ShowsCountAndRows(t *testing.T) {
	jobs := []types.Job{
		{ID: "1", Title: "Backend Engineer", Company: "Acme", Location: "Berlin", Type: "Full-time",
			Salary: types.Salary{Min: types.Amount{Value: 3000, Set: true}, Max: types.Amount{Value: 5000, Set: true}, Currency: "EUR"}},
		{ID: "2", Title: "Designer", Company: "Acme", Location: "Remote", Type: "Part-time"},
	}

	var sb strings.Builder
	NewPrinter(&sb).PrintJobList(jobs)
	out := sb.String()

	assert.Contains(t, out, "Search Results (2)")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "3000-5000 EUR")
	assert.Contains(t, out, "id: 1")
}

func TestPrintJobDetails_IncludesStrippedDescription(t *testing.T) {
	job := &types.Job{
		Title: "Backend Engineer", Company: "Acme", Location: "Berlin", Type: "Full-time",
		Description:  "<p>Build services in Go.</p>",
		Requirements: []string{"Go", "SQL"},
	}

	var sb strings.Builder
	NewPrinter(&sb).PrintJobDetails(job)
	out := sb.String()

	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "Requirements")
	assert.Contains(t, out, "Build services in Go.")
	assert.NotContains(t, out, "<p>")
}

func TestPrintApplications(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb)

	p.PrintApplications(nil)
	assert.Contains(t, sb.String(), "No applications yet")

	sb.Reset()
	p.PrintApplications([]types.Application{
		{ID: "app1", Status: types.StatusShortlisted, Job: &types.Job{Title: "Backend Engineer", Company: "Acme"}},
	})
	out := sb.String()
	assert.Contains(t, out, "Backend Engineer at Acme")
	assert.Contains(t, out, "Shortlisted")
}

func TestPrintUser(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb)

	p.PrintUser(nil)
	assert.Contains(t, sb.String(), "Not logged in")

	sb.Reset()
	p.PrintUser(&types.User{Name: "Ada", Email: "a@b.com", Role: types.RoleEmployer})
	assert.Equal(t, "Ada <a@b.com> (employer)\n", sb.String())
}

func TestFormatSalary(t *testing.T) {
	require.Equal(t, "", formatSalary(types.Salary{}))
	assert.Equal(t, "3000+ USD", formatSalary(types.Salary{Min: types.Amount{Value: 3000, Set: true}}))
	assert.Equal(t, "3000-5000 EUR", formatSalary(types.Salary{
		Min: types.Amount{Value: 3000, Set: true}, Max: types.Amount{Value: 5000, Set: true}, Currency: "EUR"}))
}
