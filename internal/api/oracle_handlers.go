package api

import (
	"net/http"

	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/services"
)

type oracleRequest struct {
	Word string `json:"word"`
}

type oracleResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// handleOracle answers every failure, bad input included, with the same
// 500 body so browser callers only ever see one error shape.
func (s *Server) handleOracle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req oracleRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("oracle error: %v", err)
		writeJSON(w, r, http.StatusInternalServerError, oracleResponse{Error: services.OracleUnavailableMessage})
		return
	}

	result, err := s.OracleService.Lookup(r.Context(), req.Word)
	if err != nil {
		log.Warn("oracle error: %v", err)
		writeJSON(w, r, http.StatusInternalServerError, oracleResponse{Error: services.OracleUnavailableMessage})
		return
	}
	writeJSON(w, r, http.StatusOK, oracleResponse{Result: result})
}
