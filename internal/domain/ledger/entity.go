package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account string

const (
	AccountBank Account = "bank"
	AccountTill Account = "till"
	AccountSafe Account = "safe"
)

// Transaction is one cash movement recorded when a payroll period is closed.
// Reopening the period deletes the period's transactions again.
type Transaction struct {
	ID        string
	MonthKey  string
	Account   Account
	Label     string
	Amount    decimal.Decimal
	CreatedAt time.Time
}
