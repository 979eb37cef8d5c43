package api

import (
	"net/http"

	"github.com/dhanush7123/sanskrit-spark/internal/errors"
	"github.com/dhanush7123/sanskrit-spark/internal/quiz"
	"github.com/go-chi/chi/v5"
)

type quizInfoResponse struct {
	QuestionCount int  `json:"question_count"`
	TimeLimit     int  `json:"time_limit"`
	ServerClock   bool `json:"server_clock"`
}

type answerRequest struct {
	Index *int `json:"index"`
}

func (s *Server) handleQuizInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, quizInfoResponse{
		QuestionCount: s.QuizService.QuestionCount(),
		TimeLimit:     quiz.QuestionTime,
		ServerClock:   s.ServerClock,
	})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.QuizService.StartSession(r.Context(), profileFromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, view)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.QuizService.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleRestartSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.QuizService.RestartSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Index == nil {
		handleError(w, r, errors.NewValidationError("index", "is required"))
		return
	}

	view, err := s.QuizService.SubmitAnswer(r.Context(), chi.URLParam(r, "id"), *req.Index)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	view, err := s.QuizService.Advance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	view, err := s.QuizService.Tick(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}
