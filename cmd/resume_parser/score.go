package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the advanced score breakdown for a resume",
	Long:  "Parse a resume file and compute the weighted multi-category score covering content quality, ATS compatibility, completeness, experience quality, and professional presence.",
	RunE:  runScore,
}

var (
	scoreInputFile  string
	scoreOutputFile string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted score breakdown")

	if err := scoreCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cleanedText, _, err := ingestion.IngestFromFile(scoreInputFile)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	resume := parser.Parse(cleanedText)
	breakdown := scoring.AdvancedScore(resume)

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoreBreakdown(&breakdown)
	}

	jsonBytes, err := json.MarshalIndent(breakdown, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if scoreOutputFile == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.WriteFile(scoreOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Overall score: %d/100\n", breakdown.OverallScore)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", scoreOutputFile)

	return nil
}
