package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-finder/internal/types"
	"github.com/spf13/cobra"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "View and edit your company profile (employers)",
}

var companyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your company profile",
	RunE:  runCompanyShow,
}

var companyUpdateCmd = &cobra.Command{
	Use:   "update <profile.json>",
	Short: "Overwrite your company profile from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyUpdate,
}

func init() {
	companyCmd.AddCommand(companyShowCmd, companyUpdateCmd)
	rootCmd.AddCommand(companyCmd)
}

func runCompanyShow(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	profile, err := a.client.GetCompanyProfile(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(profile)
}

func runCompanyUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profile file %s: %w", args[0], err)
	}
	var profile types.CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile file %s: %w", args[0], err)
	}

	updated, err := a.client.UpdateCompanyProfile(cmd.Context(), profile)
	if err != nil {
		return err
	}
	fmt.Println("Company profile updated")
	return printJSON(updated)
}
