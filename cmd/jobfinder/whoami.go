package main

import (
	"fmt"
	"time"

	"github.com/jonathan/job-finder/internal/session"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in identity",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	a.printer.PrintUser(a.sess.User())
	if token := a.sess.Token(); token != "" {
		if exp, ok := session.TokenExpiry(token); ok {
			if time.Now().After(exp) {
				fmt.Printf("Session expired %s\n", exp.Format(time.RFC3339))
			} else {
				fmt.Printf("Session valid until %s\n", exp.Format(time.RFC3339))
			}
		}
	}
	return nil
}
