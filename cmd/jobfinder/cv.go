package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var cvUploadName string

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Manage your uploaded CVs",
}

var cvListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your CVs",
	RunE:  runCVList,
}

var cvUploadCmd = &cobra.Command{
	Use:   "upload <file.pdf>",
	Short: "Upload a CV",
	Args:  cobra.ExactArgs(1),
	RunE:  runCVUpload,
}

var cvDeleteCmd = &cobra.Command{
	Use:   "delete <cvID>",
	Short: "Delete a CV",
	Args:  cobra.ExactArgs(1),
	RunE:  runCVDelete,
}

func init() {
	cvUploadCmd.Flags().StringVar(&cvUploadName, "name", "", "Display name for the CV (defaults to the file name)")
	cvCmd.AddCommand(cvListCmd, cvUploadCmd, cvDeleteCmd)
	rootCmd.AddCommand(cvCmd)
}

func runCVList(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	cvs, err := a.client.GetUserCVs(cmd.Context())
	if err != nil {
		return err
	}
	a.printer.PrintCVs(cvs)
	return nil
}

func runCVUpload(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	name := cvUploadName
	if name == "" {
		name = filepath.Base(args[0])
	}

	cv, err := a.client.UploadCV(cmd.Context(), name, f)
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded %q (id %s)\n", cv.Name, cv.ID)
	return nil
}

func runCVDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	if err := a.client.DeleteCV(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted CV %s\n", args[0])
	return nil
}
