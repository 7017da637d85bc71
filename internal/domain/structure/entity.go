package structure

import "time"

// Account is one entry of the chart of accounts.
type Account struct {
	ID        string
	Code      string
	Label     string
	Kind      AccountKind
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AccountKind string

const (
	AccountKindExpense AccountKind = "expense"
	AccountKindRevenue AccountKind = "revenue"
	AccountKindAsset   AccountKind = "asset"
)

// ProductFamily groups finished products for costing and reporting.
type ProductFamily struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
