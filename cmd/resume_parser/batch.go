package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse and export a directory of resumes in parallel",
	Long: `Parse every .txt, .html, and .htm file in a directory, export each in the
chosen format, and write results to the output directory.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBatch,
}

var (
	batchConfigPath  string
	batchInputDir    string
	batchOutputDir   string
	batchFormat      string
	batchWorkers     int
	batchUserID      string
	batchDatabaseURL string
	batchVerbose     bool
)

func init() {
	// Config file flag (processed first)
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	batchCmd.Flags().StringVarP(&batchInputDir, "in", "i", "", "Directory of resume files")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out", "o", "", "Output directory")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "Export format: text, xml, json, enhanced, csv (default \"text\")")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Parallel workers (default 4)")
	batchCmd.Flags().StringVar(&batchUserID, "user-id", "", "User UUID to attribute stored resumes to (requires --db-url)")
	batchCmd.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL for persisting parsed resumes (optional, defaults to DATABASE_URL env var)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print per-file progress")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if batchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if batchVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", batchConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("in") {
		cfg.Input = batchInputDir
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = batchOutputDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = batchFormat
	}
	if cmd.Flags().Changed("workers") {
		cfg.MaxConcurrency = batchWorkers
	}
	if cmd.Flags().Changed("user-id") {
		cfg.UserID = batchUserID
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = batchDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}

	// Step 3: Fill remaining gaps with defaults
	cfg = cfg.MergeWithDefaults(config.Config{Format: "text"})

	if cfg.Input == "" {
		return fmt.Errorf("input directory is required (use --in or 'input' in config)")
	}
	if cfg.OutDir == "" {
		return fmt.Errorf("output directory is required (use --out or 'out_dir' in config)")
	}
	if !config.ValidExportFormat(cfg.Format) {
		return fmt.Errorf("unknown export format %q (valid formats: %s)", cfg.Format, strings.Join(config.ExportFormats, ", "))
	}

	files, err := collectResumeFiles(cfg.Input)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no resume files found in %s", cfg.Input)
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Optional database persistence
	var database *db.DB
	var userID *uuid.UUID
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.UserID != "" && databaseURL == "" {
		return fmt.Errorf("--user-id requires a database URL")
	}
	if databaseURL != "" {
		database, err = db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if cfg.UserID != "" {
			parsed, err := uuid.Parse(cfg.UserID)
			if err != nil {
				return fmt.Errorf("invalid user-id: %w", err)
			}
			userID = &parsed
		}
	}

	var processed, failed atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.MaxConcurrency)

	for _, file := range files {
		group.Go(func() error {
			if err := processResumeFile(groupCtx, file, cfg, database, userID); err != nil {
				failed.Add(1)
				_, _ = fmt.Fprintf(os.Stderr, "Error: %s: %v\n", filepath.Base(file), err)
				return nil
			}
			processed.Add(1)
			if cfg.Verbose {
				_, _ = fmt.Fprintf(os.Stdout, "Processed: %s\n", filepath.Base(file))
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Batch complete: %d processed, %d failed\n", processed.Load(), failed.Load())

	if failed.Load() > 0 {
		return fmt.Errorf("%d of %d files failed", failed.Load(), len(files))
	}

	return nil
}

// processResumeFile ingests, parses, and exports a single resume, writing the
// export and a metadata sidecar next to it. When database is non-nil the
// parsed resume is persisted as well.
func processResumeFile(ctx context.Context, path string, cfg config.Config, database *db.DB, userID *uuid.UUID) error {
	cleanedText, metadata, err := ingestion.IngestFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to ingest: %w", err)
	}

	resume := parser.Parse(cleanedText)
	fileName := filepath.Base(path)

	content, ext, err := renderFormat(cfg.Format, resume, fileName)
	if err != nil {
		return fmt.Errorf("failed to render export: %w", err)
	}

	base := exportBaseName(fileName)
	outputPath := filepath.Join(cfg.OutDir, base+ext)
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	metaBytes, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(cfg.OutDir, base+".meta.json")
	if err := os.WriteFile(metaPath, metaBytes, 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	if database != nil {
		input := &db.SaveResumeInput{
			UserID:               userID,
			FileName:             fileName,
			FileType:             strings.TrimPrefix(filepath.Ext(fileName), "."),
			FileSize:             len(cleanedText),
			RawText:              cleanedText,
			ConfidenceScore:      scoring.ConfidenceScore(resume),
			TotalYearsExperience: scoring.YearsOfExperience(resume.WorkExperience),
		}
		if _, err := database.SaveResume(ctx, input, resume); err != nil {
			return fmt.Errorf("failed to save resume: %w", err)
		}
	}

	return nil
}

// collectResumeFiles returns the plain-text and HTML files directly inside
// dir, sorted by name. Subdirectories are not descended into.
func collectResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".text", ".html", ".htm":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}
