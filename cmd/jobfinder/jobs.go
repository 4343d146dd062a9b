package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/job-finder/internal/search"
	"github.com/spf13/cobra"
)

var (
	jobsPosted    bool
	jobsKeyword   string
	jobsLocation  string
	jobsType      string
	jobsSalaryMin float64
	jobsSalaryMax float64
	jobsWatch     bool
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List jobs, optionally filtered locally",
	Long: `List open postings. Filter flags are applied client-side against the full
job set, so repeated filtering needs no further network calls. With --watch
the command keeps reading filter edits from stdin and re-renders after each
quiet period.`,
	RunE: runJobs,
}

func init() {
	jobsCmd.Flags().BoolVar(&jobsPosted, "posted", false, "Only the authenticated employer's own postings")
	jobsCmd.Flags().StringVar(&jobsKeyword, "keyword", "", "Match against title or company")
	jobsCmd.Flags().StringVar(&jobsLocation, "location", "", "Match against location")
	jobsCmd.Flags().StringVar(&jobsType, "type", "", "Match against job type")
	jobsCmd.Flags().Float64Var(&jobsSalaryMin, "salary-min", 0, "Lowest acceptable salary minimum")
	jobsCmd.Flags().Float64Var(&jobsSalaryMax, "salary-max", 0, "Highest acceptable salary maximum")
	jobsCmd.Flags().BoolVar(&jobsWatch, "watch", false, "Interactive mode: read filter edits from stdin")
	rootCmd.AddCommand(jobsCmd)
}

func jobsCriteria(cmd *cobra.Command) search.Criteria {
	c := search.Criteria{
		Keyword:  jobsKeyword,
		Location: jobsLocation,
		JobType:  jobsType,
	}
	if cmd.Flags().Changed("salary-min") {
		v := jobsSalaryMin
		c.SalaryMin = &v
	}
	if cmd.Flags().Changed("salary-max") {
		v := jobsSalaryMax
		c.SalaryMax = &v
	}
	return c
}

func runJobs(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	if jobsPosted {
		jobs, err := a.client.GetPostedJobs(cmd.Context())
		if err != nil {
			return err
		}
		a.printer.PrintJobList(jobs)
		return nil
	}

	if jobsWatch {
		return watchJobs(cmd, a)
	}

	jobs, err := a.client.GetJobs(cmd.Context())
	if err != nil {
		return err
	}
	a.printer.PrintJobList(search.Filter(jobs, jobsCriteria(cmd)))
	return nil
}

// watchJobs runs the search engine interactively: each stdin line is a
// criteria edit (keyword=..., location=..., type=..., or bare text for the
// keyword), and the view re-renders after the debounce quiet period.
func watchJobs(cmd *cobra.Command, a *app) error {
	rendered := make(chan search.Snapshot, 16)
	engine := search.NewEngine(a.client, &search.Options{
		Debounce: a.cfg.Debounce(),
		Notify:   func(snap search.Snapshot) { rendered <- snap },
	})
	defer engine.Close()

	go func() {
		for snap := range rendered {
			if snap.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", snap.Err)
				continue
			}
			a.printer.PrintJobList(snap.Jobs)
		}
	}()

	if err := engine.Load(cmd.Context()); err != nil {
		return err
	}
	engine.SetCriteria(jobsCriteria(cmd))

	fmt.Fprintln(os.Stderr, `Type filter edits (keyword=..., location=..., type=...), "refresh", or "quit".`)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "quit" || line == "q":
			return nil
		case line == "refresh":
			if err := engine.Load(cmd.Context()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		default:
			engine.SetCriteria(applyEdit(engine.Criteria(), line))
		}
	}
	return scanner.Err()
}

// applyEdit updates one criteria field from a "field=value" line. A line
// without '=' edits the keyword.
func applyEdit(c search.Criteria, line string) search.Criteria {
	field, value, found := strings.Cut(line, "=")
	if !found {
		c.Keyword = line
		return c
	}
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "keyword":
		c.Keyword = strings.TrimSpace(value)
	case "location":
		c.Location = strings.TrimSpace(value)
	case "type", "jobtype":
		c.JobType = strings.TrimSpace(value)
	default:
		c.Keyword = line
	}
	return c
}
