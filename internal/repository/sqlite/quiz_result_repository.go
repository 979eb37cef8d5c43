package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/dhanush7123/sanskrit-spark/internal/db"
	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/dhanush7123/sanskrit-spark/internal/repository"
)

const defaultResultLimit = 20

type quizResultRepository struct {
	db *sql.DB
}

// NewQuizResultRepository creates a new QuizResultRepository implementation
func NewQuizResultRepository(db *sql.DB) repository.QuizResultRepository {
	return &quizResultRepository{db: db}
}

// Insert stores the result and its answers in one transaction.
func (r *quizResultRepository) Insert(ctx context.Context, res models.QuizResult) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_result_repo")
	log.Debug("inserting quiz result: session_id=%s, score=%d, answers=%d", res.SessionID, res.Score, len(res.Answers))

	var id int64
	err := db.Tx(ctx, r.db, func(tx *sql.Tx) error {
		out, err := tx.ExecContext(ctx, `
INSERT INTO quiz_results (session_id, profile_id, player_name, score, correct_count, question_count, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, res.SessionID, nullableID(res.ProfileID), res.PlayerName, res.Score, res.CorrectCount, res.QuestionCount, res.CompletedAt)
		if err != nil {
			return err
		}
		id, err = out.LastInsertId()
		if err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO quiz_answers (result_id, question_index, question_id, selected_index, correct, timed_out, points)
VALUES (?, ?, ?, ?, ?, ?, ?)
`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, a := range res.Answers {
			if _, err := stmt.ExecContext(ctx, id, a.QuestionIndex, a.QuestionID, a.SelectedIndex, a.Correct, a.TimedOut, a.Points); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to insert quiz result: %v", err)
		return 0, err
	}
	log.Debug("quiz result inserted: id=%d", id)
	return id, nil
}

func (r *quizResultRepository) GetBySession(ctx context.Context, sessionID string) (*models.QuizResult, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_result_repo")
	log.Debug("getting quiz result: session_id=%s", sessionID)

	results, err := r.query(ctx, resultColumns().Where(squirrel.Eq{"session_id": sessionID}))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, repository.ErrNotFound
	}
	res := results[0]

	rows, err := r.db.QueryContext(ctx, `
SELECT id, result_id, question_index, question_id, selected_index, correct, timed_out, points
FROM quiz_answers
WHERE result_id = ?
ORDER BY question_index ASC
`, res.ID)
	if err != nil {
		log.Error("failed to query quiz answers: %v", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.QuizAnswer
		if err := rows.Scan(&a.ID, &a.ResultID, &a.QuestionIndex, &a.QuestionID, &a.SelectedIndex, &a.Correct, &a.TimedOut, &a.Points); err != nil {
			log.Error("failed to scan quiz answer row: %v", err)
			return nil, err
		}
		res.Answers = append(res.Answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &res, nil
}

// List returns results newest first, without answers.
func (r *quizResultRepository) List(ctx context.Context, filter models.ResultFilter) ([]models.QuizResult, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_result_repo")
	log.Debug("listing quiz results: profile_id=%d, min_score=%d, limit=%d, offset=%d",
		filter.ProfileID, filter.MinScore, filter.Limit, filter.Offset)

	query := resultColumns()
	if filter.ProfileID != 0 {
		query = query.Where(squirrel.Eq{"profile_id": filter.ProfileID})
	}
	if filter.MinScore > 0 {
		query = query.Where(squirrel.GtOrEq{"score": filter.MinScore})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultResultLimit
	}
	query = query.OrderBy("completed_at DESC", "id DESC").Limit(uint64(limit))
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	return r.query(ctx, query)
}

func resultColumns() squirrel.SelectBuilder {
	return sqlBuilder.
		Select("id", "session_id", "profile_id", "player_name", "score", "correct_count", "question_count", "completed_at").
		From("quiz_results")
}

func (r *quizResultRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]models.QuizResult, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_result_repo")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build quiz result query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query quiz results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.QuizResult
	for rows.Next() {
		var res models.QuizResult
		var profileID sql.NullInt64
		if err := rows.Scan(&res.ID, &res.SessionID, &profileID, &res.PlayerName, &res.Score, &res.CorrectCount, &res.QuestionCount, &res.CompletedAt); err != nil {
			log.Error("failed to scan quiz result row: %v", err)
			return nil, err
		}
		res.ProfileID = idPtr(profileID)
		results = append(results, res)
	}
	return results, rows.Err()
}
