package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// WithTransaction runs fn inside a single database transaction. The
// multi-table writes here (month close, timeline edits, recipe creates)
// must land together or not at all, so any error from fn rolls everything
// back.
func WithTransaction(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				slog.Error("rollback during panic recovery failed", slog.Any("error", rbErr))
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier resolves the querier for the current call: the transaction a
// service put in the context, or the plain pool. Repositories call this at
// the top of every method so the same code serves both paths.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
