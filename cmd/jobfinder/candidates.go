package main

import (
	"github.com/spf13/cobra"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates <jobID>",
	Short: "List applicants for one of your postings",
	Args:  cobra.ExactArgs(1),
	RunE:  runCandidates,
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	candidates, err := a.client.GetCandidates(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	a.printer.PrintCandidates(candidates)
	return nil
}
