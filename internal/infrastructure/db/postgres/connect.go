package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	v5pgconn "github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Querier is the slice of pgxpool.Pool the repositories need. pgxmock
// satisfies it too, which keeps repository tests off a live database.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (v5pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func New(ctx context.Context, logger *zap.Logger, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}

	logger.Info("db connected successfully")

	return pool, nil
}
