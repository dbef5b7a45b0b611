package types

import (
	"github.com/go-playground/validator/v10"
)

// ParseRequest is the request body for parse and score endpoints.
type ParseRequest struct {
	FileName string `json:"file_name,omitempty"`
	Text     string `json:"text" validate:"required"`
}

// SubmitResumeRequest is the request body for creating a resume record.
type SubmitResumeRequest struct {
	FileName string `json:"file_name" validate:"required,min=1"`
	FileType string `json:"file_type,omitempty"`
	Text     string `json:"text" validate:"required"`
}

// ExportRequest is the request body for export endpoints.
type ExportRequest struct {
	FileName string `json:"file_name,omitempty"`
	Text     string `json:"text" validate:"required"`
}

// TokenRequest is the request body for exchanging the API credential for a token.
type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SubmitResumeRequest using the validator.
func (r *SubmitResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExportRequest using the validator.
func (r *ExportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
