// internal/database/round.go
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hakubun/kanarush/internal/history"
)

// InsertRoundTx persists one finished round inside the given transaction.
func InsertRoundTx(ctx context.Context, tx pgx.Tx, rec history.RoundRecord) error {
	q := `
		INSERT INTO rounds (
			lobby_id, winner, alphabet, target, used_time_ms, finished_at
		) VALUES ($1, $2, $3, $4, $5, to_timestamp($6 / 1000.0))
	`
	_, err := tx.Exec(ctx, q,
		rec.LobbyID, rec.Winner, rec.Alphabet, rec.Target, rec.UsedTimeMs, rec.FinishedAt,
	)
	return err
}

// BeginTxFunc starts a transaction on the pool, runs f, and commits or
// rolls back depending on f's result.
func BeginTxFunc(ctx context.Context, pool *pgxpool.Pool, txOptions pgx.TxOptions, f func(tx pgx.Tx) error) error {
	tx, err := pool.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}
	if err := f(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx rollback error: %v; original error: %w", rbErr, err)
		}
		return err
	}
	return tx.Commit(ctx)
}
