package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/config"
)

const sampleResumeText = `Jane Doe
jane.doe@gmail.com
555-123-4567
Austin, TX
linkedin.com/in/janedoe

Professional Summary
Seasoned software engineer who improved deployment throughput by 40% and managed a team of five engineers.

Skills
Python, JavaScript, SQL, Leadership

Experience
Software Engineer | Acme Corp
Jan 2020 - Present
- Built data pipelines that increased reporting speed

Education
State University
Bachelor of Science in Computer Science
2018`

// newTestServer builds a server without a database connection; only the
// stateless and auth endpoints are exercised.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	credentials := &config.CredentialConfig{BcryptCost: 10}
	hash, err := credentials.HashAPIKey("test-api-key")
	require.NoError(t, err)
	credentials.APIKeyHash = hash

	return &Server{
		tokens:      newTestTokenService(time.Hour),
		credentials: credentials,
		schemaPath:  resolveExportSchema(),
	}
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleParse(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	rec := postJSON(t, mux, "/parse", map[string]string{
		"file_name": "jane.txt",
		"text":      sampleResumeText,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Resume.PersonalInfo.FullName)
	assert.Equal(t, "Jane Doe", *resp.Resume.PersonalInfo.FullName)
	require.NotNil(t, resp.Resume.PersonalInfo.Email)
	assert.Equal(t, "jane.doe@gmail.com", *resp.Resume.PersonalInfo.Email)
	assert.NotEmpty(t, resp.Resume.Skills)
	assert.NotEmpty(t, resp.Resume.WorkExperience)
	assert.Greater(t, resp.ConfidenceScore, 0)
}

func TestHandleParse_MissingText(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	rec := postJSON(t, mux, "/parse", map[string]string{"file_name": "jane.txt"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleParse_UnsupportedFileType(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	rec := postJSON(t, mux, "/parse", map[string]string{
		"file_name": "resume.pdf",
		"text":      "binary",
	})
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestHandleParse_EmptyDocument(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	rec := postJSON(t, mux, "/parse", map[string]string{
		"file_name": "resume.txt",
		"text":      "   \n\n  ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScoreAdvanced(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	rec := postJSON(t, mux, "/score/advanced", map[string]string{
		"file_name": "jane.txt",
		"text":      sampleResumeText,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ConfidenceScore int `json:"confidence_score"`
		Breakdown       struct {
			OverallScore int `json:"overallScore"`
			Categories   map[string]struct {
				Score    float64 `json:"score"`
				MaxScore float64 `json:"maxScore"`
			} `json:"categories"`
		} `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.GreaterOrEqual(t, resp.Breakdown.OverallScore, 0)
	assert.LessOrEqual(t, resp.Breakdown.OverallScore, 100)
	require.Len(t, resp.Breakdown.Categories, 5)
	for name, category := range resp.Breakdown.Categories {
		assert.GreaterOrEqual(t, category.Score, 0.0, name)
		assert.LessOrEqual(t, category.Score, category.MaxScore, name)
	}
}

func TestHandleExport_Formats(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	for _, format := range config.ExportFormats {
		t.Run(format, func(t *testing.T) {
			rec := postJSON(t, mux, "/export/"+format, map[string]string{
				"file_name": "jane.txt",
				"text":      sampleResumeText,
			})
			require.Equal(t, http.StatusOK, rec.Code)

			var resp ExportResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, format, resp.Format)
			assert.NotEmpty(t, resp.Content)
		})
	}
}

func TestHandleExport_UnknownFormat(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	rec := postJSON(t, mux, "/export/pdf", map[string]string{
		"text": sampleResumeText,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown export format")
}

func TestHandleExport_XMLContainsRecord(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	rec := postJSON(t, mux, "/export/xml", map[string]string{
		"file_name": "jane.txt",
		"text":      sampleResumeText,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ExportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Content, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, resp.Content, "<fullName>Jane Doe</fullName>")
}

func TestHandleToken(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	rec := postJSON(t, mux, "/auth/token", map[string]string{"api_key": "test-api-key"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	ownerID, err := s.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ownerID)
}

func TestHandleToken_WrongKey(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	rec := postJSON(t, mux, "/auth/token", map[string]string{"api_key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid API key")
}

func TestHandleToken_MissingKey(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	rec := postJSON(t, mux, "/auth/token", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMutatingRoutesRequireAuth(t *testing.T) {
	s := newTestServer(t)
	mux := s.routes()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/resumes"},
		{http.MethodDelete, "/resumes"},
		{http.MethodDelete, "/resumes/550e8400-e29b-41d4-a716-446655440000"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}
