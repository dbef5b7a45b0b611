package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume text file into structured JSON",
	Long:  "Parse a plain-text or HTML resume file into structured JSON with personal info, skills, work experience, education, and certifications.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume text file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a formatted summary of the extraction")

	if err := parseCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cleanedText, _, err := ingestion.IngestFromFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	resume := parser.Parse(cleanedText)
	confidence := scoring.ConfidenceScore(resume)

	if parseVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintParsedResume(&resume, confidence)
		printer.PrintSkills(resume.Skills)
		printer.PrintWorkExperience(resume.WorkExperience)
	}

	jsonBytes, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(parseOutputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed resume (confidence: %d/100)\n", confidence)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)

	return nil
}
