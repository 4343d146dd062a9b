package main

import (
	"fmt"

	"github.com/jonathan/job-finder/internal/types"
	"github.com/spf13/cobra"
)

var (
	applyCVID        string
	applyCoverLetter string
)

var applyCmd = &cobra.Command{
	Use:   "apply <jobID>",
	Short: "Apply for a job with one of your CVs",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyCVID, "cv", "", "ID of the CV to attach (required; see 'cv list')")
	applyCmd.Flags().StringVar(&applyCoverLetter, "cover-letter", "", "Cover letter text")
	_ = applyCmd.MarkFlagRequired("cv")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	req := types.ApplyRequest{
		JobID:       args[0],
		CVID:        applyCVID,
		CoverLetter: applyCoverLetter,
	}
	app, err := a.client.Apply(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Printf("Application submitted (id %s, status %s)\n", app.ID, app.Status)
	return nil
}
