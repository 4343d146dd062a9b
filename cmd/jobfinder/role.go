package main

import (
	"fmt"

	"github.com/jonathan/job-finder/internal/types"
	"github.com/spf13/cobra"
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Manage the account role",
}

var roleSetCmd = &cobra.Command{
	Use:   "set <jobseeker|employer>",
	Short: "Switch the account between jobseeker and employer",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoleSet,
}

func init() {
	roleCmd.AddCommand(roleSetCmd)
	rootCmd.AddCommand(roleCmd)
}

func runRoleSet(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	user := a.sess.User()
	if user == nil || user.ID == "" {
		return fmt.Errorf("no user record in session; log in again")
	}

	updated, err := a.client.UpdateUserRole(cmd.Context(), user.ID, types.Role(args[0]))
	if err != nil {
		return err
	}

	// Keep the session's user record in sync with the server.
	if err := a.sess.Establish(a.sess.Token(), *updated); err != nil {
		return fmt.Errorf("role updated but failed to persist session: %w", err)
	}
	fmt.Printf("Role is now %s\n", updated.Role)
	return nil
}
