package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const repoLogPrefix = "db:repository"

// DefaultListLimit and MaxListLimit bound ListFeedback.
const (
	DefaultListLimit = 5
	MaxListLimit     = 25
)

// Repository provides database access for feedback.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// InsertFeedbackParams holds parameters for InsertFeedback.
type InsertFeedbackParams struct {
	GuildID  string
	UserID   string
	Username string
	Topic    string
	Body     string
}

// InsertFeedback stores one submission and returns the stored row.
func (r *Repository) InsertFeedback(ctx context.Context, params InsertFeedbackParams) (*Feedback, error) {
	slog.Info(fmt.Sprintf("%s - InsertFeedback guild=%s user=%s topic=%s", repoLogPrefix, params.GuildID, params.UserID, params.Topic))

	row := r.pool.QueryRow(ctx,
		`INSERT INTO feedback (guild_id, user_id, username, topic, body, created)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, guild_id, user_id, username, topic, body, created`,
		params.GuildID, params.UserID, params.Username, params.Topic, params.Body, time.Now().UTC())

	return scanFeedback(row)
}

// ListFeedback returns the newest submissions for a guild, newest first.
// An empty guildID lists direct-message submissions.
func (r *Repository) ListFeedback(ctx context.Context, guildID string, limit int) ([]Feedback, error) {
	limit = ClampLimit(limit)
	slog.Debug(fmt.Sprintf("%s - ListFeedback guild=%s limit=%d", repoLogPrefix, guildID, limit))

	rows, err := r.pool.Query(ctx,
		`SELECT id, guild_id, user_id, username, topic, body, created
		 FROM feedback
		 WHERE guild_id = $1
		 ORDER BY created DESC, id DESC
		 LIMIT $2`, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s - list feedback failed: %w", repoLogPrefix, err)
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s - list feedback rows: %w", repoLogPrefix, err)
	}
	return out, nil
}

// DeleteFeedback removes one submission. It reports whether a row existed.
func (r *Repository) DeleteFeedback(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("%s - delete feedback %d failed: %w", repoLogPrefix, id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ClampLimit maps a requested page size into [1, MaxListLimit], using
// DefaultListLimit for anything below 1.
func ClampLimit(limit int) int {
	if limit < 1 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func scanFeedback(row pgx.Row) (*Feedback, error) {
	var f Feedback
	err := row.Scan(&f.ID, &f.GuildID, &f.UserID, &f.Username, &f.Topic, &f.Body, &f.Created)
	if err != nil {
		return nil, fmt.Errorf("%s - scan feedback failed: %w", repoLogPrefix, err)
	}
	return &f, nil
}
