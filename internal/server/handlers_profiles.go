package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/internship-matcher/internal/db"
	"github.com/jonathan/internship-matcher/internal/types"
)

// handleCreateProfile stores a new student profile.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Profile store not configured")
		return
	}

	var profile types.StudentProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}

	rec, err := s.db.CreateProfile(r.Context(), profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, rec)
}

// handleGetProfile retrieves a stored profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
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
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleUpdateProfile replaces a stored profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Profile store not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	var profile types.StudentProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}

	rec, err := s.db.UpdateProfile(r.Context(), id, profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteProfile removes a stored profile.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Profile store not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	deleted, err := s.db.DeleteProfile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListRuns returns the stored match history for a profile.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Profile store not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	runs, err := s.db.ListMatchRuns(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []db.MatchRun{}
	}
	s.jsonResponse(w, http.StatusOK, runs)
}
