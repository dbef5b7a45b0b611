// Package main implements the resume_parser CLI tool for extracting
// structured data from plain-text resumes.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Resume parsing and scoring toolkit",
	Long:  "Resume Parser extracts structured data from plain-text resumes, scores them for ATS compatibility, and exports them in recruiter-friendly formats.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
