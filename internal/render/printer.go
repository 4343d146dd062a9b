package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jonathan/job-finder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxListItems caps how many requirement/benefit lines are shown
	maxListItems = 5
)

// NoResultsMessage is shown when a search matched nothing. Matching zero
// jobs is a valid outcome, not an error.
const NoResultsMessage = "No jobs found matching your criteria"

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobList outputs one line per job plus a result count.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintJobList(jobs []types.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(p.out, NoResultsMessage)
		return
	}
	fmt.Fprintf(p.out, "Search Results (%d)\n\n", len(jobs))
	for _, job := range jobs {
		fmt.Fprintf(p.out, "%-24s  %-20s  %-16s  %s\n",
			truncate(job.Title, 24), truncate(job.Company, 20), truncate(job.Location, 16), job.Type)
		fmt.Fprintf(p.out, "  id: %s", job.ID)
		if salary := formatSalary(job.Salary); salary != "" {
			fmt.Fprintf(p.out, "  salary: %s", salary)
		}
		fmt.Fprintln(p.out)
	}
}

// PrintJobDetails outputs a full posting.
func (p *Printer) PrintJobDetails(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:   %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", job.Location))
	sb.WriteString(fmt.Sprintf("Type:      %s\n", job.Type))
	if job.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry:  %s\n", job.Industry))
	}
	if salary := formatSalary(job.Salary); salary != "" {
		sb.WriteString(fmt.Sprintf("Salary:    %s\n", salary))
	}
	if job.NumberOfPositions > 0 {
		sb.WriteString(fmt.Sprintf("Positions: %d\n", job.NumberOfPositions))
	}
	if job.ApplicationDeadline != nil {
		sb.WriteString(fmt.Sprintf("Deadline:  %s\n", job.ApplicationDeadline.Format("2006-01-02")))
	}

	appendList(&sb, "Requirements", job.Requirements)
	appendList(&sb, "Benefits", job.Benefits)

	p.printBox("JOB DETAILS", strings.TrimSuffix(sb.String(), "\n"))

	if text := DescriptionText(job.Description); text != "" {
		fmt.Fprintf(p.out, "\n%s\n", text)
	}
}

// PrintApplications outputs the user's applications with their statuses.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintApplications(apps []types.Application) {
	if len(apps) == 0 {
		fmt.Fprintln(p.out, "No applications yet")
		return
	}
	for _, app := range apps {
		title := app.JobID
		if app.Job != nil {
			title = fmt.Sprintf("%s at %s", app.Job.Title, app.Job.Company)
		}
		fmt.Fprintf(p.out, "%-40s  %s", truncate(title, 40), app.Status)
		if app.AppliedDate != nil {
			fmt.Fprintf(p.out, "  applied %s", app.AppliedDate.Format("2006-01-02"))
		}
		fmt.Fprintf(p.out, "\n  id: %s\n", app.ID)
	}
}

// PrintCandidates outputs the applicants for a posting.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCandidates(candidates []types.Candidate) {
	if len(candidates) == 0 {
		fmt.Fprintln(p.out, "No candidates yet")
		return
	}
	for _, c := range candidates {
		fmt.Fprintf(p.out, "%-24s  %-28s  %s\n",
			truncate(c.User.Name, 24), truncate(c.User.Email, 28), c.Application.Status)
		fmt.Fprintf(p.out, "  application: %s\n", c.Application.ID)
	}
}

// PrintCVs outputs the user's uploaded documents.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCVs(cvs []types.CV) {
	if len(cvs) == 0 {
		fmt.Fprintln(p.out, "No CVs uploaded")
		return
	}
	for _, cv := range cvs {
		fmt.Fprintf(p.out, "%-32s  id: %s\n", truncate(cv.Name, 32), cv.ID)
	}
}

// PrintUser outputs the logged-in identity.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintUser(user *types.User) {
	if user == nil {
		fmt.Fprintln(p.out, "Not logged in")
		return
	}
	fmt.Fprintf(p.out, "%s <%s>", user.Name, user.Email)
	if user.Role != "" {
		fmt.Fprintf(p.out, " (%s)", user.Role)
	}
	fmt.Fprintln(p.out)
}

func appendList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxListItems)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxListItems {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxListItems))
	}
}

func formatSalary(s types.Salary) string {
	if !s.Min.Set && !s.Max.Set {
		return ""
	}
	currency := s.Currency
	if currency == "" {
		currency = "USD"
	}
	lo := s.MinOrZero()
	hi := s.MaxOrInf()
	if math.IsInf(hi, 1) {
		return fmt.Sprintf("%.0f+ %s", lo, currency)
	}
	return fmt.Sprintf("%.0f-%.0f %s", lo, hi, currency)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
