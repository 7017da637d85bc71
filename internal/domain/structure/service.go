package structure

import "context"

type StructureService interface {
	// Chart of accounts
	CreateAccount(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	ListAccounts(ctx context.Context) ([]AccountResponse, error)
	UpdateAccount(ctx context.Context, req UpdateAccountRequest) (AccountResponse, error)
	DeleteAccount(ctx context.Context, id string) error

	// Product families
	CreateProductFamily(ctx context.Context, req CreateProductFamilyRequest) (ProductFamilyResponse, error)
	ListProductFamilies(ctx context.Context) ([]ProductFamilyResponse, error)
	DeleteProductFamily(ctx context.Context, id string) error
}
