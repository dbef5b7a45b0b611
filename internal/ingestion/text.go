package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var innerSpaceRe = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes raw resume text while preserving structure. Blank
// lines separate blocks downstream (section windows, experience entries),
// so they are kept, only capped at one blank line in a row.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")

	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Preserve bullet markers so description extraction can strip them
	// itself; only normalize the indentation run.
	indent := len(line) - len(trimmed)

	// Collapse runs of spaces and tabs inside the line.
	content := innerSpaceRe.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 1.
func removeExcessiveBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// Ingest validates and cleans document content based on its file name.
// HTML documents are reduced to their visible text first; binary formats
// are rejected. The returned text is what the extractors consume.
func Ingest(fileName string, content string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	switch ext {
	case ".pdf", ".docx", ".doc":
		return "", &UnsupportedTypeError{Extension: ext}
	case ".html", ".htm":
		text, err := ExtractHTMLText(content)
		if err != nil {
			return "", err
		}
		content = text
	}

	cleaned := CleanText(content)
	if cleaned == "" {
		return "", &InputError{Message: "document contains no text"}
	}
	return cleaned, nil
}

// IngestFromFile reads a document from disk, cleans it, and returns the
// cleaned text with ingest metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	fileName := filepath.Base(path)
	cleaned, err := Ingest(fileName, string(content))
	if err != nil {
		return "", nil, err
	}

	metadata := NewMetadata(fileName, cleaned, len(content))
	return cleaned, metadata, nil
}
