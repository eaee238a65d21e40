package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

const clearLogPrefix = "db:clear"

// ClearFeedback truncates the feedback table. Schema is preserved and
// RESTART IDENTITY resets the id sequence.
func ClearFeedback(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info(fmt.Sprintf("%s - Clearing feedback", clearLogPrefix))

	if _, err := pool.Exec(ctx, `TRUNCATE TABLE feedback RESTART IDENTITY`); err != nil {
		return fmt.Errorf("%s - truncate failed: %w", clearLogPrefix, err)
	}

	slog.Info(fmt.Sprintf("%s - Feedback cleared", clearLogPrefix))
	return nil
}
