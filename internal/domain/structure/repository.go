package structure

import "context"

type StructureRepository interface {
	// Chart of accounts
	CreateAccount(ctx context.Context, account Account) (Account, error)
	GetAccountByID(ctx context.Context, id string) (Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	UpdateAccount(ctx context.Context, req UpdateAccountRequest) error
	DeleteAccount(ctx context.Context, id string) error

	// Product families
	CreateProductFamily(ctx context.Context, family ProductFamily) (ProductFamily, error)
	ListProductFamilies(ctx context.Context) ([]ProductFamily, error)
	DeleteProductFamily(ctx context.Context, id string) error
}
