package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Metadata describes one ingested document.
type Metadata struct {
	FileName  string `json:"file_name"`
	FileType  string `json:"file_type,omitempty"` // extension without the dot
	FileSize  int    `json:"file_size"`           // bytes, before cleaning
	Timestamp string `json:"timestamp"`           // RFC3339 format
	Hash      string `json:"hash"`                // SHA256 hex digest of cleaned text
}

// NewMetadata creates a Metadata instance with current timestamp.
func NewMetadata(fileName string, cleanedText string, rawSize int) *Metadata {
	return &Metadata{
		FileName:  fileName,
		FileType:  strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), "."),
		FileSize:  rawSize,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(cleanedText),
	}
}

// computeHash computes SHA256 hash of content and returns hex string.
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
