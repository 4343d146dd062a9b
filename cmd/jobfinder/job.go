package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-finder/internal/schemas"
	"github.com/jonathan/job-finder/internal/types"
	"github.com/spf13/cobra"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Inspect and manage individual postings",
}

var jobShowCmd = &cobra.Command{
	Use:   "show <jobID>",
	Short: "Show a posting in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobShow,
}

var jobPostCmd = &cobra.Command{
	Use:   "post <draft.json>",
	Short: "Create a posting from a JSON draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobPost,
}

var jobUpdateCmd = &cobra.Command{
	Use:   "update <jobID> <draft.json>",
	Short: "Overwrite a posting from a JSON draft",
	Args:  cobra.ExactArgs(2),
	RunE:  runJobUpdate,
}

var jobDeleteCmd = &cobra.Command{
	Use:   "delete <jobID>",
	Short: "Delete a posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobDelete,
}

func init() {
	jobCmd.AddCommand(jobShowCmd, jobPostCmd, jobUpdateCmd, jobDeleteCmd)
	rootCmd.AddCommand(jobCmd)
}

func runJobShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	job, err := a.client.GetJob(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	a.printer.PrintJobDetails(job)
	return nil
}

// loadJobDraft reads and schema-validates a job draft before it is sent.
// Catching a malformed draft here keeps the failure local and readable.
func loadJobDraft(path string) (*types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job draft %s: %w", path, err)
	}
	if err := schemas.ValidateJobDraft(data); err != nil {
		return nil, err
	}
	var job types.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job draft %s: %w", path, err)
	}
	return &job, nil
}

func runJobPost(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	draft, err := loadJobDraft(args[0])
	if err != nil {
		return err
	}
	created, err := a.client.PostJob(cmd.Context(), *draft)
	if err != nil {
		return err
	}
	fmt.Printf("Posted %q (id %s)\n", created.Title, created.ID)
	return nil
}

func runJobUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	draft, err := loadJobDraft(args[1])
	if err != nil {
		return err
	}
	updated, err := a.client.UpdateJob(cmd.Context(), args[0], *draft)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %q (id %s)\n", updated.Title, updated.ID)
	return nil
}

func runJobDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	if err := a.client.DeleteJob(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted job %s\n", args[0])
	return nil
}
