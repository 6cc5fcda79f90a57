package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/internship-matcher/internal/claims"
	"github.com/jonathan/internship-matcher/internal/docai"
	"github.com/jonathan/internship-matcher/internal/listings"
	"github.com/jonathan/internship-matcher/internal/pipeline"
	"github.com/jonathan/internship-matcher/internal/types"
)

// MatchRequest represents the request body for /match and /eligibility.
type MatchRequest struct {
	Profile types.StudentProfile `json:"profile"`

	// Documents to analyze, as pre-extracted text per kind.
	Documents []DocumentInput `json:"documents,omitempty"`

	// Claims already normalized by the caller; merged over analyzed ones.
	Claims []claims.RawExtraction `json:"claims,omitempty"`

	// Listings lets the caller supply the pool directly instead of the
	// configured source.
	Listings []types.InternshipListing `json:"listings,omitempty"`

	Limit int `json:"limit,omitempty"`
}

// DocumentInput is one supporting document in a match request.
type DocumentInput struct {
	Kind types.DocumentKind `json:"kind"`
	Text string             `json:"text"`
}

// MatchResponse represents the response for /match.
type MatchResponse struct {
	Verdict types.EligibilityVerdict `json:"verdict"`
	Results []types.MatchResult      `json:"results"`

	// ClaimWarnings reports documents whose analysis failed; those claims
	// were treated as absent.
	ClaimWarnings []string `json:"claim_warnings,omitempty"`
}

// handleMatch runs the full eligibility-then-match flow for an inline profile.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeMatchRequest(w, r)
	if !ok {
		return
	}
	s.runMatch(w, r, req, true)
}

// handleEligibility evaluates eligibility only; the listing pool is never fetched.
func (s *Server) handleEligibility(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeMatchRequest(w, r)
	if !ok {
		return
	}
	req.Listings = nil
	s.runMatch(w, r, req, false)
}

func (s *Server) decodeMatchRequest(w http.ResponseWriter, r *http.Request) (MatchRequest, bool) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return req, false
	}
	return req, true
}

// runMatch assembles pipeline options from the request and executes the run.
func (s *Server) runMatch(w http.ResponseWriter, r *http.Request, req MatchRequest, withListings bool) {
	claimSet, claimErrs := claims.NormalizeAll(req.Claims)

	opts := pipeline.RunOptions{
		Profile:  req.Profile,
		Claims:   claimSet,
		Criteria: s.criteria,
		Limit:    req.Limit,
		Logger:   s.log,
	}

	if s.analyzer != nil {
		opts.Analyzer = s.analyzer
		for _, doc := range req.Documents {
			opts.Documents = append(opts.Documents, docai.Document{Kind: doc.Kind, Text: doc.Text})
		}
	}

	if withListings {
		switch {
		case len(req.Listings) > 0:
			opts.Source = listings.Static(listings.Dedupe(req.Listings))
		case s.source != nil:
			opts.Source = s.source
		}
	}

	result, err := pipeline.Run(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	resp := MatchResponse{
		Verdict: result.Verdict,
		Results: result.Results,
	}
	if resp.Results == nil {
		resp.Results = []types.MatchResult{}
	}
	for _, cerr := range append(claimErrs, result.ClaimErrors...) {
		resp.ClaimWarnings = append(resp.ClaimWarnings, cerr.Error())
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleMatchProfile runs matching against a stored profile.
func (s *Server) handleMatchProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Profile store not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	rec, err := s.db.GetProfile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	var req MatchRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}
	req.Profile = rec.Profile

	claimSet, claimErrs := claims.NormalizeAll(req.Claims)
	opts := pipeline.RunOptions{
		Profile:  req.Profile,
		Claims:   claimSet,
		Criteria: s.criteria,
		Limit:    req.Limit,
		Logger:   s.log,
		Source:   s.source,
	}
	if s.analyzer != nil {
		opts.Analyzer = s.analyzer
		for _, doc := range req.Documents {
			opts.Documents = append(opts.Documents, docai.Document{Kind: doc.Kind, Text: doc.Text})
		}
	}

	result, err := pipeline.Run(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	if _, err := s.db.SaveMatchRun(r.Context(), id, result.Verdict, result.Results); err != nil {
		// History is best-effort; the verdict still goes back to the caller.
		s.log.Warn("failed to persist match run", zap.Error(err))
	}

	resp := MatchResponse{Verdict: result.Verdict, Results: result.Results}
	if resp.Results == nil {
		resp.Results = []types.MatchResult{}
	}
	for _, cerr := range append(claimErrs, result.ClaimErrors...) {
		resp.ClaimWarnings = append(resp.ClaimWarnings, cerr.Error())
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHealth responds to health checks.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// httpStatus maps pipeline errors to HTTP status codes.
func httpStatus(err error) int {
	var invalid *pipeline.InvalidProfileError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	var sourceDown *listings.SourceUnavailableError
	if errors.As(err, &sourceDown) {
		return http.StatusBadGateway
	}
	var analysisDown *docai.ServiceUnavailableError
	if errors.As(err, &analysisDown) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
