package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/export"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a parsed resume in an ATS-friendly format",
	Long:  "Parse a resume file and export it in one of: text, xml, json, enhanced, csv. The enhanced format bundles ATS keywords and optimization suggestions alongside the parsed resume.",
	RunE:  runExport,
}

var (
	exportInputFile string
	exportFormat    string
	exportOutputDir string
	exportVerbose   bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to resume text file (required)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "text", "Export format: text, xml, json, enhanced, csv")
	exportCmd.Flags().StringVarP(&exportOutputDir, "out", "o", "", "Output directory (defaults to stdout)")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print optimization suggestions for the enhanced format")

	if err := exportCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	if !config.ValidExportFormat(exportFormat) {
		return fmt.Errorf("unknown export format %q (valid formats: %s)", exportFormat, strings.Join(config.ExportFormats, ", "))
	}

	cleanedText, _, err := ingestion.IngestFromFile(exportInputFile)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	resume := parser.Parse(cleanedText)
	fileName := filepath.Base(exportInputFile)

	content, ext, err := renderFormat(exportFormat, resume, fileName)
	if err != nil {
		return fmt.Errorf("failed to render export: %w", err)
	}

	if exportVerbose && exportFormat == "enhanced" {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSuggestions(export.OptimizationSuggestions(resume))
	}

	if exportOutputDir == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", content)
		return nil
	}

	if err := os.MkdirAll(exportOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(exportOutputDir, exportBaseName(fileName)+ext)
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully exported resume\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputPath)

	return nil
}

// renderFormat produces the export content and file extension for a format.
// The format must already be validated via config.ValidExportFormat.
func renderFormat(format string, resume types.ParsedResume, fileName string) (string, string, error) {
	switch format {
	case "text":
		return export.ATSPlainText(resume), ".txt", nil
	case "xml":
		return export.ATSXML(resume, fileName), ".xml", nil
	case "json":
		jsonBytes, err := json.MarshalIndent(resume, "", "  ")
		if err != nil {
			return "", "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(jsonBytes), ".json", nil
	case "enhanced":
		content, err := export.EnhancedJSON(resume, fileName)
		if err != nil {
			return "", "", err
		}

		// Validate against schema (if schema file exists)
		schemaPath := schemas.ResolveSchemaPath(schemas.ATSExportSchema)
		if schemaPath != "" {
			if err := schemas.ValidateDocument(schemaPath, content); err != nil {
				var validationErr *schemas.ValidationError
				var schemaLoadErr *schemas.SchemaLoadError
				if errors.As(err, &validationErr) {
					return "", "", fmt.Errorf("generated JSON does not validate against schema: %w", err)
				} else if errors.As(err, &schemaLoadErr) {
					_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
				} else {
					_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
				}
			}
		}

		return content, ".enhanced.json", nil
	case "csv":
		return export.CSV(resume), ".csv", nil
	default:
		return "", "", fmt.Errorf("unknown export format %q", format)
	}
}

func exportBaseName(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
