package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dhanush7123/sanskrit-spark/internal/errors"
	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/oracle"
)

const maxOracleWordLength = 64

// OracleUnavailableMessage is the only failure text shown to oracle callers.
const OracleUnavailableMessage = "The Oracle is meditating..."

// OracleService explains the Sanskrit roots of a word
type OracleService interface {
	Lookup(ctx context.Context, word string) (string, error)
}

type oracleService struct {
	client oracle.ClientInterface
}

// NewOracleService creates a new OracleService
func NewOracleService(client oracle.ClientInterface) OracleService {
	return &oracleService{client: client}
}

func (s *oracleService) Lookup(ctx context.Context, word string) (string, error) {
	log := logger.FromContext(ctx)
	word = strings.TrimSpace(word)

	if word == "" {
		return "", errors.NewValidationError("word", "cannot be empty")
	}
	if utf8.RuneCountInString(word) > maxOracleWordLength {
		return "", errors.NewValidationError("word", "must be at most 64 characters")
	}

	log.Debug("consulting oracle: word=%s", word)
	result, err := s.client.Explain(ctx, word)
	if err != nil {
		log.Error("oracle error: %v", err)
		return "", errors.NewUnavailableError(OracleUnavailableMessage, err)
	}
	return result, nil
}
