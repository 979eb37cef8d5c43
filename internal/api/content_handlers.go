package api

import (
	"net/http"

	"github.com/dhanush7123/sanskrit-spark/internal/content"
	"github.com/dhanush7123/sanskrit-spark/internal/errors"
	"github.com/go-chi/chi/v5"
)

type articlesResponse struct {
	Articles []content.Article `json:"articles"`
}

type timelineResponse struct {
	Events []content.TimelineEvent `json:"events"`
}

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, articlesResponse{Articles: content.Articles()})
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	article, ok := content.FindArticle(slug)
	if !ok {
		handleError(w, r, errors.NewNotFoundError("article", slug))
		return
	}
	writeJSON(w, r, http.StatusOK, article)
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, timelineResponse{Events: content.Timeline()})
}
