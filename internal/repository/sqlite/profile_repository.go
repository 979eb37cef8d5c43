package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/dhanush7123/sanskrit-spark/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository implementation
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context, id int64) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("getting profile: id=%d", id)

	var p models.Profile
	var lastSeen sql.NullTime
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, karma_points, created_at, last_seen_at
FROM profiles
WHERE id = ?
`, id).Scan(&p.ID, &p.Name, &p.KarmaPoints, &p.CreatedAt, &lastSeen)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("profile not found: id=%d", id)
		return nil, repository.ErrNotFound
	}
	if err != nil {
		log.Error("failed to get profile: %v", err)
		return nil, err
	}
	p.LastSeenAt = timePtr(lastSeen)
	return &p, nil
}

func (r *profileRepository) Upsert(ctx context.Context, name string) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("upserting profile: name=%s", name)

	var p models.Profile
	var lastSeen sql.NullTime
	err := r.db.QueryRowContext(ctx, `
INSERT INTO profiles (name, last_seen_at)
VALUES (?, CURRENT_TIMESTAMP)
ON CONFLICT(name) DO UPDATE SET last_seen_at = CURRENT_TIMESTAMP
RETURNING id, name, karma_points, created_at, last_seen_at
`, name).Scan(&p.ID, &p.Name, &p.KarmaPoints, &p.CreatedAt, &lastSeen)
	if err != nil {
		log.Error("failed to upsert profile: %v", err)
		return nil, err
	}
	p.LastSeenAt = timePtr(lastSeen)
	log.Debug("profile upserted: id=%d", p.ID)
	return &p, nil
}

func (r *profileRepository) AddKarma(ctx context.Context, id int64, points int) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("adding karma: profile_id=%d, points=%d", id, points)

	res, err := r.db.ExecContext(ctx, `UPDATE profiles SET karma_points = karma_points + ? WHERE id = ?`, points, id)
	if err != nil {
		log.Error("failed to add karma: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
