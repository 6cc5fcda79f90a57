package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/claims"
	"github.com/jonathan/internship-matcher/internal/docai"
	"github.com/jonathan/internship-matcher/internal/listings"
	"github.com/jonathan/internship-matcher/internal/pipeline"
	"github.com/jonathan/internship-matcher/internal/types"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func testServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	return New(cfg)
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func matchRequestBody() MatchRequest {
	return MatchRequest{
		Profile: types.StudentProfile{
			Name:               "Asha Kumar",
			Age:                intPtr(22),
			Qualification:      "BSc Computer Science",
			FamilyIncomeAnnual: floatPtr(450000),
			Skills:             []string{"Python", "SQL"},
			Interests:          []string{"data"},
			LocationPreference: "Bangalore",
		},
		Listings: []types.InternshipListing{
			{
				CompanyName:    "Acme Analytics",
				Title:          "Data Analyst Intern",
				Location:       "Bangalore",
				RequiredSkills: []string{"Python", "SQL"},
			},
		},
	}
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t, Config{})

	rec := doRequest(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestHandleMatch_EligibleWithInlineListings(t *testing.T) {
	s := testServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/match", matchRequestBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Verdict.Eligible)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 100, resp.Results[0].Score)
}

func TestHandleMatch_IneligibleReturnsEmptyResults(t *testing.T) {
	s := testServer(t, Config{})

	body := matchRequestBody()
	body.Profile.Qualification = "MBA"

	rec := doRequest(t, s, http.MethodPost, "/match", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Verdict.Eligible)
	assert.Equal(t, []types.RuleID{types.RuleQualificationCeiling}, resp.Verdict.ViolatedRules)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestHandleMatch_InvalidProfileReturns400(t *testing.T) {
	s := testServer(t, Config{})

	body := matchRequestBody()
	body.Profile.Age = intPtr(-1)

	rec := doRequest(t, s, http.MethodPost, "/match", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch_MalformedBodyReturns400(t *testing.T) {
	s := testServer(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch_UsesConfiguredSource(t *testing.T) {
	pool := []types.InternshipListing{
		{CompanyName: "Acme", Title: "Data Intern", Location: "Bangalore", RequiredSkills: []string{"Python"}},
	}
	s := testServer(t, Config{Source: listings.Static(pool)})

	body := matchRequestBody()
	body.Listings = nil

	rec := doRequest(t, s, http.MethodPost, "/match", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Acme", resp.Results[0].Listing.CompanyName)
}

func TestHandleMatch_SourceDownReturns502(t *testing.T) {
	source := listings.SourceFunc(func(_ context.Context, _ types.StudentProfile) ([]types.InternshipListing, error) {
		return nil, &listings.SourceUnavailableError{Source: "catalog", Cause: errors.New("timeout")}
	})
	s := testServer(t, Config{Source: source})

	body := matchRequestBody()
	body.Listings = nil

	rec := doRequest(t, s, http.MethodPost, "/match", body)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleMatch_ClaimWarningsReported(t *testing.T) {
	s := testServer(t, Config{})

	body := matchRequestBody()
	body.Claims = []claims.RawExtraction{{Kind: "passport", Fields: map[string]any{}}}

	rec := doRequest(t, s, http.MethodPost, "/match", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ClaimWarnings)
}

func TestHandleEligibility_NeverReturnsListings(t *testing.T) {
	s := testServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/eligibility", matchRequestBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Verdict.Eligible)
	assert.Empty(t, resp.Results)
}

func TestProfileEndpoints_WithoutDatabaseReturn503(t *testing.T) {
	s := testServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/profiles", matchRequestBody().Profile)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/profiles/0b49c2be-1b6a-4be6-b1a4-006ea8c2f7d1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHTTPStatus_ErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest,
		httpStatus(&pipeline.InvalidProfileError{Message: "bad"}))
	assert.Equal(t, http.StatusBadGateway,
		httpStatus(&listings.SourceUnavailableError{Source: "catalog"}))
	assert.Equal(t, http.StatusBadGateway,
		httpStatus(&docai.ServiceUnavailableError{Message: "down"}))
	assert.Equal(t, http.StatusInternalServerError,
		httpStatus(errors.New("anything else")))
}
