package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted if omitted)")
	_ = loginCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	password := loginPassword
	if password == "" {
		password = os.Getenv("JOBFINDER_PASSWORD")
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	resp, err := a.client.Login(cmd.Context(), loginEmail, password)
	if err != nil {
		return err
	}
	if err := a.sess.Establish(resp.Token, resp.User); err != nil {
		return fmt.Errorf("logged in but failed to persist session: %w", err)
	}

	fmt.Printf("Logged in as %s\n", resp.User.Email)
	return nil
}
