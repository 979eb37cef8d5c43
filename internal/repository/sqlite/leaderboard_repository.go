package sqlite

import (
	"context"
	"database/sql"

	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/dhanush7123/sanskrit-spark/internal/repository"
)

type leaderboardRepository struct {
	db *sql.DB
}

// NewLeaderboardRepository creates a new LeaderboardRepository implementation
func NewLeaderboardRepository(db *sql.DB) repository.LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("leaderboard_repo")
	log.Debug("fetching leaderboard: limit=%d", limit)

	query := sqlBuilder.
		Select("id", "name", "profile_id", "score", "created_at").
		From("leaderboard_entries").
		OrderBy("score DESC", "id ASC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build leaderboard query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query leaderboard: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		var profileID sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Name, &profileID, &e.Score, &e.CreatedAt); err != nil {
			log.Error("failed to scan leaderboard row: %v", err)
			return nil, err
		}
		e.ProfileID = idPtr(profileID)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *leaderboardRepository) Insert(ctx context.Context, e models.LeaderboardEntry) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("leaderboard_repo")
	log.Debug("inserting leaderboard entry: name=%s, score=%d", e.Name, e.Score)

	sqlStr, args, err := sqlBuilder.
		Insert("leaderboard_entries").
		Columns("name", "profile_id", "score").
		Values(e.Name, nullableID(e.ProfileID), e.Score).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to insert leaderboard entry: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}
