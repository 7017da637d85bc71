package ledger

import "context"

type LedgerRepository interface {
	RecordTransactions(ctx context.Context, txs []Transaction) error
	DeleteByMonth(ctx context.Context, monthKey string) error
	ListByMonth(ctx context.Context, monthKey string) ([]Transaction, error)
}
