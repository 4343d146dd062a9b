package main

import (
	"github.com/jonathan/job-finder/internal/api"
	"github.com/spf13/cobra"
)

var (
	searchKeyword   string
	searchLocation  string
	searchType      string
	searchSalaryMin float64
	searchSalaryMax float64
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search jobs server-side",
	Long:  "Run the search on the server via /api/jobs/search. For iterating on filters locally without repeated requests, see 'jobs'.",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchKeyword, "keyword", "", "Match against title or company")
	searchCmd.Flags().StringVar(&searchLocation, "location", "", "Match against location")
	searchCmd.Flags().StringVar(&searchType, "type", "", "Match against job type")
	searchCmd.Flags().Float64Var(&searchSalaryMin, "salary-min", 0, "Lowest acceptable salary minimum")
	searchCmd.Flags().Float64Var(&searchSalaryMax, "salary-max", 0, "Highest acceptable salary maximum")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	params := api.SearchParams{
		Keyword:  searchKeyword,
		Location: searchLocation,
		JobType:  searchType,
	}
	if cmd.Flags().Changed("salary-min") {
		v := searchSalaryMin
		params.SalaryMin = &v
	}
	if cmd.Flags().Changed("salary-max") {
		v := searchSalaryMax
		params.SalaryMax = &v
	}

	jobs, err := a.client.SearchJobs(cmd.Context(), params)
	if err != nil {
		return err
	}
	a.printer.PrintJobList(jobs)
	return nil
}
