package main

import (
	"fmt"

	"github.com/jonathan/job-finder/internal/types"
	"github.com/spf13/cobra"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List your applications",
	RunE:  runApplications,
}

var applicationsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List your applications with their review status",
	RunE:  runApplicationsStatus,
}

var applicationsAppliedCmd = &cobra.Command{
	Use:   "applied",
	Short: "List the postings you have applied to",
	RunE:  runApplicationsApplied,
}

var applicationsSetStatusCmd = &cobra.Command{
	Use:   "set-status <applicationID> <status>",
	Short: "Move an application through review (poster only)",
	Long:  "Set an application's status to Pending, Shortlisted, Rejected or Accepted. Only the job's poster is authorized.",
	Args:  cobra.ExactArgs(2),
	RunE:  runApplicationsSetStatus,
}

func init() {
	applicationsCmd.AddCommand(applicationsStatusCmd, applicationsAppliedCmd, applicationsSetStatusCmd)
	rootCmd.AddCommand(applicationsCmd)
}

func runApplications(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	apps, err := a.client.GetUserApplications(cmd.Context())
	if err != nil {
		return err
	}
	a.printer.PrintApplications(apps)
	return nil
}

func runApplicationsStatus(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	apps, err := a.client.GetApplicationStatus(cmd.Context())
	if err != nil {
		return err
	}
	a.printer.PrintApplications(apps)
	return nil
}

func runApplicationsApplied(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	jobs, err := a.client.GetAppliedJobs(cmd.Context())
	if err != nil {
		return err
	}
	a.printer.PrintJobList(jobs)
	return nil
}

func runApplicationsSetStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	app, err := a.client.UpdateApplicationStatus(cmd.Context(), args[0], types.ApplicationStatus(args[1]))
	if err != nil {
		return err
	}
	fmt.Printf("Application %s is now %s\n", app.ID, app.Status)
	return nil
}
