package api

import (
	"net/http"

	"github.com/dhanush7123/sanskrit-spark/internal/errors"
	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/go-chi/chi/v5"
)

type loginRequest struct {
	Name string `json:"name"`
}

type resultsResponse struct {
	Results []models.QuizResult `json:"results"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	profile, err := s.ProfileService.Login(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("profile logged in: id=%d", profile.ID)
	s.setProfileCookie(w, profile.ID)
	writeJSON(w, r, http.StatusOK, profile)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearProfileCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCurrentProfile(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewNotFoundError("profile", "current"))
		return
	}
	writeJSON(w, r, http.StatusOK, profile)
}

func (s *Server) handleProfileResults(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewNotFoundError("profile", "current"))
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}

	results, err := s.ProfileService.Results(r.Context(), profile.ID, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if results == nil {
		results = []models.QuizResult{}
	}
	writeJSON(w, r, http.StatusOK, resultsResponse{Results: results})
}

func (s *Server) handleProfileResult(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewNotFoundError("profile", "current"))
		return
	}

	result, err := s.ProfileService.Result(r.Context(), profile.ID, chi.URLParam(r, "playID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
