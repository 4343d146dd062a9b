package main

import (
	"fmt"

	"github.com/jonathan/job-finder/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Fetch jobs, applications and CVs in one go",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	var (
		jobs []types.Job
		apps []types.Application
		cvs  []types.CV
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		jobs, err = a.client.GetJobs(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		apps, err = a.client.GetUserApplications(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		cvs, err = a.client.GetUserCVs(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("== Jobs ==\n")
	a.printer.PrintJobList(jobs)
	fmt.Printf("\n== Applications ==\n")
	a.printer.PrintApplications(apps)
	fmt.Printf("\n== CVs ==\n")
	a.printer.PrintCVs(cvs)
	return nil
}
