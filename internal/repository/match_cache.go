package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"riot-stats-hub/internal/constants"
)

// MatchCacheRepository persists raw match payloads. Finished matches
// never change, so a cached row within the TTL is served without
// touching the upstream API.
type MatchCacheRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMatchCacheRepository(db *sql.DB, logger zerolog.Logger) *MatchCacheRepository {
	return &MatchCacheRepository{db: db, logger: logger}
}

// Get returns the cached payload for a match ID, or (nil, nil) on a
// cache miss or expired row.
func (r *MatchCacheRepository) Get(ctx context.Context, matchID string) ([]byte, error) {
	var payload []byte
	var fetchedAt time.Time

	row := r.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM match_cache WHERE match_id = ?`, matchID)
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read match cache: %w", err)
	}

	if time.Since(fetchedAt) > constants.MatchCacheTTL {
		return nil, nil
	}
	return payload, nil
}

func (r *MatchCacheRepository) Put(ctx context.Context, matchID, region string, payload []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO match_cache (match_id, region, payload, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(match_id) DO UPDATE SET
		   region = excluded.region,
		   payload = excluded.payload,
		   fetched_at = excluded.fetched_at`,
		matchID, region, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write match cache: %w", err)
	}
	return nil
}

// Prune deletes rows older than the cache TTL and returns how many
// were removed.
func (r *MatchCacheRepository) Prune(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM match_cache WHERE fetched_at < ?`,
		time.Now().UTC().Add(-constants.MatchCacheTTL))
	if err != nil {
		return 0, fmt.Errorf("failed to prune match cache: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		r.logger.Info().Int64("removed", removed).Msg("Pruned expired match cache rows")
	}
	return removed, nil
}
