// Package main provides the entry point for the job-finder CLI, a client
// for the remote job-board REST API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "jobfinder",
	Short: "Job board client",
	Long:  "jobfinder browses, searches, posts and applies to jobs on a remote job-board API, and manages CVs and application status from the terminal.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("JOBFINDER_CONFIG"), "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Print diagnostic output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
