package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/fournilsoft/backoffice-go/internal/domain/structure"
	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
	"github.com/fournilsoft/backoffice-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type structureRepositoryImpl struct {
	db *database.DB
}

func NewStructureRepository(db *database.DB) structure.StructureRepository {
	return &structureRepositoryImpl{db: db}
}

// CreateAccount implements structure.StructureRepository.
func (r *structureRepositoryImpl) CreateAccount(ctx context.Context, account structure.Account) (structure.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounting_accounts (code, label, kind)
		VALUES ($1, $2, $3)
		RETURNING id, code, label, kind, created_at, updated_at
	`

	var created structure.Account
	err := q.QueryRow(ctx, query, account.Code, account.Label, account.Kind).Scan(
		&created.ID, &created.Code, &created.Label, &created.Kind, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return structure.Account{}, structure.ErrAccountCodeExists
		}
		return structure.Account{}, err
	}

	return created, nil
}

// GetAccountByID implements structure.StructureRepository.
func (r *structureRepositoryImpl) GetAccountByID(ctx context.Context, id string) (structure.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, code, label, kind, created_at, updated_at FROM accounting_accounts WHERE id = $1`

	var account structure.Account
	err := q.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.Code, &account.Label, &account.Kind, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return structure.Account{}, structure.ErrAccountNotFound
		}
		return structure.Account{}, err
	}

	return account, nil
}

// ListAccounts implements structure.StructureRepository.
func (r *structureRepositoryImpl) ListAccounts(ctx context.Context) ([]structure.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, code, label, kind, created_at, updated_at FROM accounting_accounts ORDER BY code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []structure.Account
	for rows.Next() {
		var account structure.Account
		err := rows.Scan(&account.ID, &account.Code, &account.Label, &account.Kind, &account.CreatedAt, &account.UpdatedAt)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

// UpdateAccount implements structure.StructureRepository. Builds the SET
// clause from the fields actually present in the request.
func (r *structureRepositoryImpl) UpdateAccount(ctx context.Context, req structure.UpdateAccountRequest) error {
	q := GetQuerier(ctx, r.db)

	var sets []string
	var args []interface{}
	idx := 1

	if req.Label != nil {
		sets = append(sets, "label = $"+validator.Itoa(idx))
		args = append(args, *req.Label)
		idx++
	}
	if req.Kind != nil {
		sets = append(sets, "kind = $"+validator.Itoa(idx))
		args = append(args, *req.Kind)
		idx++
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, req.ID)
	query := "UPDATE accounting_accounts SET " + strings.Join(sets, ", ") + " WHERE id = $" + validator.Itoa(idx)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return structure.ErrAccountNotFound
	}
	return nil
}

// DeleteAccount implements structure.StructureRepository.
func (r *structureRepositoryImpl) DeleteAccount(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM accounting_accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return structure.ErrAccountNotFound
	}
	return nil
}

// CreateProductFamily implements structure.StructureRepository.
func (r *structureRepositoryImpl) CreateProductFamily(ctx context.Context, family structure.ProductFamily) (structure.ProductFamily, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO product_families (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`

	var created structure.ProductFamily
	err := q.QueryRow(ctx, query, family.Name).Scan(&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return structure.ProductFamily{}, structure.ErrFamilyNameExists
		}
		return structure.ProductFamily{}, err
	}

	return created, nil
}

// ListProductFamilies implements structure.StructureRepository.
func (r *structureRepositoryImpl) ListProductFamilies(ctx context.Context) ([]structure.ProductFamily, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM product_families ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var families []structure.ProductFamily
	for rows.Next() {
		var family structure.ProductFamily
		if err := rows.Scan(&family.ID, &family.Name, &family.CreatedAt, &family.UpdatedAt); err != nil {
			return nil, err
		}
		families = append(families, family)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return families, nil
}

// DeleteProductFamily implements structure.StructureRepository.
func (r *structureRepositoryImpl) DeleteProductFamily(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM product_families WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return structure.ErrProductFamilyNotFound
	}
	return nil
}
