package api

import (
	"net/http"

	"github.com/dhanush7123/sanskrit-spark/internal/quiz"
)

type leaderboardResponse struct {
	Entries []quiz.RankedEntry `json:"entries"`
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := s.LeaderboardService.Top(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, leaderboardResponse{Entries: board})
}
