package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-finder/internal/types"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your job-seeker profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update <profile.json>",
	Short: "Overwrite your profile from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileUpdate,
}

func init() {
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	profile, err := a.client.GetUserProfile(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(profile)
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
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
	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile file %s: %w", args[0], err)
	}

	updated, err := a.client.UpdateUserProfile(cmd.Context(), profile)
	if err != nil {
		return err
	}
	fmt.Println("Profile updated")
	return printJSON(updated)
}

// printJSON renders a record as indented JSON for profile-style output where
// a fixed table layout would hide fields.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
