package postgresql

import (
	"context"

	"github.com/fournilsoft/backoffice-go/internal/domain/ledger"
	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepositoryImpl{db: db}
}

// RecordTransactions implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) RecordTransactions(ctx context.Context, txs []ledger.Transaction) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ledger_transactions (month_key, account, label, amount)
		VALUES ($1, $2, $3, $4)
	`

	for _, tx := range txs {
		if _, err := q.Exec(ctx, query, tx.MonthKey, tx.Account, tx.Label, tx.Amount); err != nil {
			return err
		}
	}
	return nil
}

// DeleteByMonth implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) DeleteByMonth(ctx context.Context, monthKey string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM ledger_transactions WHERE month_key = $1`, monthKey)
	return err
}

// ListByMonth implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) ListByMonth(ctx context.Context, monthKey string) ([]ledger.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, month_key, account, label, amount, created_at
		FROM ledger_transactions
		WHERE month_key = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, monthKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []ledger.Transaction
	for rows.Next() {
		var tx ledger.Transaction
		if err := rows.Scan(&tx.ID, &tx.MonthKey, &tx.Account, &tx.Label, &tx.Amount, &tx.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return txs, nil
}
