package db

import (
	"time"

	"github.com/google/uuid"
)

// Parsing status values for the resumes table.
const (
	ParsingStatusPending    = "pending"
	ParsingStatusProcessing = "processing"
	ParsingStatusCompleted  = "completed"
	ParsingStatusFailed     = "failed"
)

// Resume is one row of the resumes table: the uploaded document plus its
// parse outcome. The structured fields live in the child tables and are
// assembled separately.
type Resume struct {
	ID              uuid.UUID  `json:"id"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	FileName        string     `json:"file_name"`
	FileType        *string    `json:"file_type,omitempty"`
	FileSize        *int       `json:"file_size,omitempty"`
	RawText         string     `json:"raw_text"`
	StoragePath     *string    `json:"storage_path,omitempty"`
	ParsingStatus   string     `json:"parsing_status"`
	ConfidenceScore *int       `json:"confidence_score,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ResumeSummary is a lightweight view for history listings; it omits the
// raw text.
type ResumeSummary struct {
	ID              uuid.UUID `json:"id"`
	FileName        string    `json:"file_name"`
	FileType        *string   `json:"file_type,omitempty"`
	FileSize        *int      `json:"file_size,omitempty"`
	ParsingStatus   string    `json:"parsing_status"`
	ConfidenceScore *int      `json:"confidence_score,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// SaveResumeInput carries everything persisted for one parsed document.
type SaveResumeInput struct {
	UserID               *uuid.UUID
	FileName             string
	FileType             string
	FileSize             int
	RawText              string
	StoragePath          string
	ConfidenceScore      int
	TotalYearsExperience float64
}
