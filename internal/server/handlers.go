package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/export"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

// ParseResponse is the response body for /parse.
type ParseResponse struct {
	Resume          types.ParsedResume `json:"resume"`
	ConfidenceScore int                `json:"confidence_score"`
}

// ScoreResponse is the response body for /score/advanced.
type ScoreResponse struct {
	Resume          types.ParsedResume           `json:"resume"`
	ConfidenceScore int                          `json:"confidence_score"`
	Breakdown       types.AdvancedScoreBreakdown `json:"breakdown"`
}

// ExportResponse is the response body for /export/{format}.
type ExportResponse struct {
	Format   string `json:"format"`
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

// TokenResponse is the response body for /auth/token.
type TokenResponse struct {
	Token string `json:"token"`
}

func resolveExportSchema() string {
	return schemas.ResolveSchemaPath(schemas.ATSExportSchema)
}

// parseBody ingests and parses the document carried by a request. The file
// name steers ingestion (HTML extraction, binary rejection) and defaults to
// resume.txt.
func parseBody(fileName, text string) (string, types.ParsedResume, error) {
	if fileName == "" {
		fileName = "resume.txt"
	}
	cleaned, err := ingestion.Ingest(fileName, text)
	if err != nil {
		return fileName, types.ParsedResume{}, err
	}
	return fileName, parser.Parse(cleaned), nil
}

// handleParse extracts a structured resume from raw text
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	_, resume, err := parseBody(req.FileName, req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ParseResponse{
		Resume:          resume,
		ConfidenceScore: scoring.ConfidenceScore(resume),
	})
}

// handleScoreAdvanced parses raw text and scores the result across the five
// weighted categories
func (s *Server) handleScoreAdvanced(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	_, resume, err := parseBody(req.FileName, req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		Resume:          resume,
		ConfidenceScore: scoring.ConfidenceScore(resume),
		Breakdown:       scoring.AdvancedScore(resume),
	})
}

// handleExport parses raw text and renders it in the requested format
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")

	var req types.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	fileName, resume, err := parseBody(req.FileName, req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	content, err := s.renderExport(format, resume, fileName)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ExportResponse{
		Format:   format,
		FileName: fileName,
		Content:  content,
	})
}

// renderExport produces the named format. The enhanced format is checked
// against the export schema before it is returned.
func (s *Server) renderExport(format string, resume types.ParsedResume, fileName string) (string, error) {
	switch format {
	case "text":
		return export.ATSPlainText(resume), nil
	case "xml":
		return export.ATSXML(resume, fileName), nil
	case "json":
		data, err := json.MarshalIndent(resume, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "enhanced":
		content, err := export.EnhancedJSON(resume, fileName)
		if err != nil {
			return "", err
		}
		if s.schemaPath != "" {
			if err := schemas.ValidateDocument(s.schemaPath, content); err != nil {
				return "", err
			}
		}
		return content, nil
	case "csv":
		return export.CSV(resume), nil
	default:
		return "", &ErrUnknownFormat{Format: format}
	}
}

// handleToken exchanges the API key for a bearer token
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req types.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "api_key is required")
		return
	}

	if !s.credentials.VerifyAPIKey(req.APIKey) {
		err := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// Tokens are minted per credential; the subject ID groups the holder's
	// stored resumes.
	token, err := s.tokens.Issue(uuid.New())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, TokenResponse{Token: token})
}
