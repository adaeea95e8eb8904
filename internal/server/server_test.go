package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/gap-analyzer/internal/analyzer"
	"github.com/jonathan/gap-analyzer/internal/config"
	"github.com/jonathan/gap-analyzer/internal/server/ratelimit"
	"github.com/jonathan/gap-analyzer/internal/taxonomy"
)

// newTestServer builds a server without a database connection. History
// endpoints that need the database are covered by integration tests.
func newTestServer() *Server {
	limiterConfig := ratelimit.DefaultConfig()
	limiterConfig.Enabled = false
	limiterConfig.CleanupInterval = 0

	return &Server{
		analyzer:    analyzer.New(taxonomy.Default(), nil),
		rateLimiter: ratelimit.NewLimiter(limiterConfig),
		jwtService: NewJWTService(&config.JWTConfig{
			Secret:          testSecret,
			ExpirationHours: 24,
		}),
	}
}

// analyzeForm builds a multipart request body for the analyze endpoint.
func analyzeForm(t *testing.T, resumeName, resumeContent string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if resumeName != "" {
		part, err := writer.CreateFormFile("resume", resumeName)
		require.NoError(t, err)
		_, err = io.WriteString(part, resumeContent)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "ok", response["status"])
}

func TestAnalyzeGap(t *testing.T) {
	s := newTestServer()

	body, contentType := analyzeForm(t, "resume.txt",
		"Experienced engineer with Python and SQL skills.",
		map[string]string{"jd_text": "Looking for Python, Docker skills."})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response analyzeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	assert.Equal(t, []string{"python", "sql"}, response.ResumeSkills)
	assert.Equal(t, []string{"docker", "python"}, response.JDSkills)

	require.NotNil(t, response.Analysis)
	assert.InDelta(t, 50.0, response.Analysis.MatchPercentage, 0.001)
	assert.Equal(t, []string{"docker"}, response.Analysis.MissingSkills)
	// breadth ratio 2/2 gives the full 20-point bonus: 50*0.7 + 20.
	assert.InDelta(t, 55.0, response.Analysis.JobReadinessScore, 0.001)
}

func TestAnalyzeGap_DefaultHours(t *testing.T) {
	s := newTestServer()

	body, contentType := analyzeForm(t, "resume.txt",
		"Python developer.",
		map[string]string{"jd_text": "Python and Kubernetes required.", "hours_per_week": "5"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response analyzeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	// kubernetes is 10 hours at 5 hours/week.
	assert.InDelta(t, 2.0, response.Analysis.LearningVelocity.WeeksToReadiness, 0.001)
}

func TestAnalyzeGap_MissingResume(t *testing.T) {
	s := newTestServer()

	body, contentType := analyzeForm(t, "", "", map[string]string{"jd_text": "Python"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeGap_MissingJD(t *testing.T) {
	s := newTestServer()

	body, contentType := analyzeForm(t, "resume.txt", "Python developer.", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeGap_BothJDTextAndURL(t *testing.T) {
	s := newTestServer()

	body, contentType := analyzeForm(t, "resume.txt", "Python developer.", map[string]string{
		"jd_text": "Python required.",
		"jd_url":  "https://example.com/job",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeGap_InvalidHours(t *testing.T) {
	s := newTestServer()

	for _, hours := range []string{"0", "-3", "500", "ten"} {
		body, contentType := analyzeForm(t, "resume.txt", "Python developer.", map[string]string{
			"jd_text":        "Python required.",
			"hours_per_week": hours,
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		s.routes().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "hours_per_week=%s", hours)
	}
}

func TestAnalyzeGap_EmptyResumeText(t *testing.T) {
	s := newTestServer()

	body, contentType := analyzeForm(t, "resume.txt", "   \n\t  ", map[string]string{
		"jd_text": "Python required.",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAnalyzeGap_UnsupportedFormat(t *testing.T) {
	s := newTestServer()

	body, contentType := analyzeForm(t, "resume.xlsx", "binary stuff", map[string]string{
		"jd_text": "Python required.",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeGap_NoSkillsInJD(t *testing.T) {
	s := newTestServer()

	body, contentType := analyzeForm(t, "resume.txt", "Python developer.", map[string]string{
		"jd_text": "A great opportunity awaits the right candidate.",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAnalyzeGap_RoleTitleFallback(t *testing.T) {
	s := newTestServer()

	body, contentType := analyzeForm(t, "resume.txt", "Lua scripting experience.", map[string]string{
		"jd_text": "Hiring a Game Developer to join our studio.",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response analyzeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, []string{"c#", "c++", "lua"}, response.JDSkills)
}

func TestAnalysesRequireAuth(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/analyses"},
		{http.MethodGet, "/api/v1/analyses/" + uuid.NewString()},
		{http.MethodDelete, "/api/v1/analyses/" + uuid.NewString()},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		s.routes().ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestAnalysesRejectInvalidToken(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitHeaders(t *testing.T) {
	limiterConfig := ratelimit.DefaultConfig()
	limiterConfig.CleanupInterval = 0
	s := newTestServer()
	s.rateLimiter = ratelimit.NewLimiter(limiterConfig)

	body, contentType := analyzeForm(t, "resume.txt", "Python developer.", map[string]string{
		"jd_text": "Python required.",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitExceeded(t *testing.T) {
	limiterConfig := ratelimit.DefaultConfig()
	limiterConfig.CleanupInterval = 0
	s := newTestServer()
	s.rateLimiter = ratelimit.NewLimiter(limiterConfig)

	var lastCode int
	// Burst for the analyze tier is 3; the fourth request must be rejected.
	for i := 0; i < 4; i++ {
		body, contentType := analyzeForm(t, "resume.txt", "Python developer.", map[string]string{
			"jd_text": "Python required.",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-gap", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		s.routes().ServeHTTP(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestCORSPreflightHandled(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze-gap", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(&ErrEmptyResume{}))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(&ErrNoJDSkills{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "x", Message: "y"}))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(&ErrFetch{Cause: assert.AnError}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
