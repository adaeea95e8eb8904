package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/gap-analyzer/internal/analyzer"
	"github.com/jonathan/gap-analyzer/internal/db"
	"github.com/jonathan/gap-analyzer/internal/fetch"
	"github.com/jonathan/gap-analyzer/internal/ingestion"
	"github.com/jonathan/gap-analyzer/internal/server/middleware"
	"github.com/jonathan/gap-analyzer/internal/types"
)

// maxUploadSize caps the multipart form, including the resume document.
const maxUploadSize = 10 << 20 // 10 MB

// analyzeResponse is the payload returned by the analyze-gap endpoint.
type analyzeResponse struct {
	ResumeSkills []string           `json:"resume_skills"`
	JDSkills     []string           `json:"jd_skills"`
	Analysis     *types.GapAnalysis `json:"analysis"`
}

// handleAnalyzeGap runs a full gap analysis on an uploaded resume against a
// job description supplied as text or URL.
//
// Multipart form fields:
//
//	resume         - resume document (pdf, docx, or txt), required
//	jd_text        - job description text
//	jd_url         - job posting URL (exactly one of jd_text/jd_url)
//	hours_per_week - study pace, defaults to 10
func (s *Server) handleAnalyzeGap(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	resumeText, err := s.readResume(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	req, err := parseAnalyzeForm(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jdText := req.JDText
	if req.JDURL != "" {
		jdText, err = fetch.JobDescription(r.Context(), req.JDURL, &fetch.Options{
			Timeout:    30 * time.Second,
			UseBrowser: s.useBrowser,
		})
		if err != nil {
			fetchErr := &ErrFetch{Cause: err}
			s.errorResponse(w, HTTPStatus(fetchErr), fetchErr.Error())
			return
		}
	}

	result, err := s.analyzer.Analyze(r.Context(), resumeText, jdText, req.HoursPerWeek)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed: "+err.Error())
		return
	}
	if len(result.JDSkills) == 0 {
		noSkills := &ErrNoJDSkills{}
		s.errorResponse(w, HTTPStatus(noSkills), noSkills.Error())
		return
	}

	s.persistInBackground(r, result)

	s.jsonResponse(w, http.StatusOK, analyzeResponse{
		ResumeSkills: result.ResumeSkills,
		JDSkills:     result.JDSkills,
		Analysis:     result.Analysis,
	})
}

// readResume extracts plain text from the uploaded resume document.
func (s *Server) readResume(r *http.Request) (string, error) {
	file, header, err := r.FormFile("resume")
	if err != nil {
		return "", &ErrValidation{Field: "resume", Message: "resume file is required"}
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", &ErrValidation{Field: "resume", Message: "failed to read resume upload"}
	}

	text, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", &ErrEmptyResume{}
	}
	return text, nil
}

// parseAnalyzeForm validates the non-file form fields.
func parseAnalyzeForm(r *http.Request) (*types.AnalyzeRequest, error) {
	req := &types.AnalyzeRequest{
		JDText:       strings.TrimSpace(r.FormValue("jd_text")),
		JDURL:        strings.TrimSpace(r.FormValue("jd_url")),
		HoursPerWeek: types.DefaultHoursPerWeek,
	}

	if req.JDText != "" && req.JDURL != "" {
		return nil, &ErrValidation{Field: "jd_text", Message: "provide jd_text or jd_url, not both"}
	}

	if raw := r.FormValue("hours_per_week"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ErrValidation{Field: "hours_per_week", Message: "must be an integer"}
		}
		req.HoursPerWeek = hours
	}

	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Field: "request", Message: err.Error()}
	}
	return req, nil
}

// persistInBackground saves the analysis for authenticated callers without
// blocking the response. Anonymous requests are not persisted.
func (s *Server) persistInBackground(r *http.Request, result *analyzer.Result) {
	if s.db == nil {
		return
	}

	token, ok := middleware.BearerToken(r)
	if !ok {
		return
	}
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return
	}

	userID := claims.GetUserID()
	analysis := result.Analysis
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		id, err := s.db.SaveAnalysis(ctx, userID, analysis)
		if err != nil {
			log.Printf("[HISTORY] Failed to save analysis for user %s: %v", userID, err)
			return
		}
		log.Printf("[HISTORY] Saved analysis %s for user %s", id, userID)
	}()
}

// handleListAnalyses returns the authenticated user's stored analyses,
// most recent first. Supports a ?limit= query parameter.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
	}

	records, err := s.db.ListAnalyses(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if records == nil {
		records = []db.AnalysisRecord{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": records})
}

// handleGetAnalysis returns a single stored analysis owned by the caller.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	_, record, ok := s.ownedAnalysis(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleDeleteAnalysis removes a stored analysis owned by the caller.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	_, record, ok := s.ownedAnalysis(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), record.ID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedAnalysis loads the analysis from the path ID and checks that the
// authenticated user owns it. Foreign records return 404 rather than 403 so
// record IDs are not enumerable.
func (s *Server) ownedAnalysis(w http.ResponseWriter, r *http.Request) (uuid.UUID, *db.AnalysisRecord, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return uuid.Nil, nil, false
	}

	record, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return uuid.Nil, nil, false
	}
	if record.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, db.ErrAnalysisNotFound.Error())
		return uuid.Nil, nil, false
	}
	return userID, record, true
}
