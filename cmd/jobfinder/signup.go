package main

import (
	"fmt"

	"github.com/jonathan/job-finder/internal/types"
	"github.com/spf13/cobra"
)

var (
	signupName     string
	signupEmail    string
	signupPassword string
	signupRole     string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	RunE:  runSignup,
}

func init() {
	signupCmd.Flags().StringVar(&signupName, "name", "", "Display name (required)")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Account email (required)")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Account password (required)")
	signupCmd.Flags().StringVar(&signupRole, "role", string(types.RoleJobSeeker), "Account role: jobseeker or employer")
	_ = signupCmd.MarkFlagRequired("name")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	req := types.SignupRequest{
		Name:     signupName,
		Email:    signupEmail,
		Password: signupPassword,
		Role:     types.Role(signupRole),
	}
	resp, err := a.client.Register(cmd.Context(), req)
	if err != nil {
		return err
	}

	// Some deployments return a token straight from signup; establish the
	// session when they do, otherwise point at login.
	if resp.Token != "" {
		if err := a.sess.Establish(resp.Token, resp.User); err != nil {
			return fmt.Errorf("registered but failed to persist session: %w", err)
		}
		fmt.Printf("Registered and logged in as %s\n", resp.User.Email)
		return nil
	}
	fmt.Printf("Registered %s; run 'jobfinder login' to sign in\n", signupEmail)
	return nil
}
