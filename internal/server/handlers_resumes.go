package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/server/middleware"
	"github.com/jonathan/resume-parser/internal/types"
)

// SubmitResumeResponse is the response body for POST /resumes.
type SubmitResumeResponse struct {
	ID              uuid.UUID          `json:"id"`
	FileName        string             `json:"file_name"`
	ParsingStatus   string             `json:"parsing_status"`
	ConfidenceScore int                `json:"confidence_score"`
	Resume          types.ParsedResume `json:"resume"`
}

// ResumeDetailResponse is the response body for GET /resumes/{id}.
type ResumeDetailResponse struct {
	Record db.Resume          `json:"record"`
	Resume types.ParsedResume `json:"resume"`
}

// handleSubmitResume parses the submitted document and persists the result
func (s *Server) handleSubmitResume(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SubmitResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file_name and text are required")
		return
	}

	_, resume, err := parseBody(req.FileName, req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	input := &db.SaveResumeInput{
		UserID:               &ownerID,
		FileName:             req.FileName,
		FileType:             req.FileType,
		FileSize:             len(req.Text),
		RawText:              req.Text,
		ConfidenceScore:      scoring.ConfidenceScore(resume),
		TotalYearsExperience: scoring.YearsOfExperience(resume.WorkExperience),
	}

	saved, err := s.db.SaveResume(r.Context(), input, resume)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume: "+err.Error())
		return
	}

	confidence := 0
	if saved.ConfidenceScore != nil {
		confidence = *saved.ConfidenceScore
	}
	s.jsonResponse(w, http.StatusCreated, SubmitResumeResponse{
		ID:              saved.ID,
		FileName:        saved.FileName,
		ParsingStatus:   saved.ParsingStatus,
		ConfidenceScore: confidence,
		Resume:          resume,
	})
}

// handleListResumes returns recent uploads, newest first
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	var userID *uuid.UUID
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid user_id")
			return
		}
		userID = &parsed
	}

	resumes, err := s.db.ListResumes(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes: "+err.Error())
		return
	}
	if resumes == nil {
		resumes = []db.ResumeSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetResume returns one stored resume with its structured record
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	record, resume, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume: "+err.Error())
		return
	}
	if record == nil {
		notFound := &ErrResumeNotFound{ResumeID: resumeID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ResumeDetailResponse{
		Record: *record,
		Resume: *resume,
	})
}

// handleDeleteResume removes one stored resume
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	record, _, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume: "+err.Error())
		return
	}
	if record == nil {
		notFound := &ErrResumeNotFound{ResumeID: resumeID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if err := s.db.DeleteResume(r.Context(), resumeID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleDeleteAllResumes clears the caller's stored history
func (s *Server) handleDeleteAllResumes(w http.ResponseWriter, r *http.Request) {
	var userID *uuid.UUID
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid user_id")
			return
		}
		userID = &parsed
	}

	deleted, err := s.db.DeleteAllResumes(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resumes: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"deleted": deleted})
}
