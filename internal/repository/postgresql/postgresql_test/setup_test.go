package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	setupOnce  sync.Once
	setupError error
)

// testSchema keeps the integration tests self-contained: it is the same
// shape the deployment provisions.
const testSchema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email TEXT NOT NULL UNIQUE,
	full_name TEXT NOT NULL,
	password_hash TEXT,
	role TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS employees (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	gender TEXT NOT NULL,
	dob DATE,
	marital_status TEXT NOT NULL,
	dependent_children INT NOT NULL DEFAULT 0,
	hire_date DATE NOT NULL,
	exit_date DATE,
	base_salary NUMERIC(12,2) NOT NULL DEFAULT 0,
	loan_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
	loan_repaid NUMERIC(12,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS employee_history (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	kind TEXT NOT NULL,
	event_date DATE NOT NULL,
	amount NUMERIC(12,2) NOT NULL,
	note TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
);

CREATE TABLE IF NOT EXISTS payroll_monthly_data (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	month_key TEXT NOT NULL,
	worked_days NUMERIC(5,2) NOT NULL DEFAULT 0,
	overtime_hours NUMERIC(6,2) NOT NULL DEFAULT 0,
	regular_bonus NUMERIC(12,2) NOT NULL DEFAULT 0,
	occasional_bonus NUMERIC(12,2) NOT NULL DEFAULT 0,
	advances NUMERIC(12,2) NOT NULL DEFAULT 0,
	loan_deduction NUMERIC(12,2) NOT NULL DEFAULT 0,
	is_paid BOOLEAN NOT NULL DEFAULT FALSE,
	is_closed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (employee_id, month_key)
);

CREATE TABLE IF NOT EXISTS payroll_periods (
	month_key TEXT PRIMARY KEY,
	is_closed BOOLEAN NOT NULL DEFAULT FALSE,
	closed_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS ledger_transactions (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	month_key TEXT NOT NULL,
	account TEXT NOT NULL,
	label TEXT NOT NULL,
	amount NUMERIC(12,2) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
);

CREATE TABLE IF NOT EXISTS accounting_accounts (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	code TEXT NOT NULL UNIQUE,
	label TEXT NOT NULL,
	kind TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS product_families (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS ingredients (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	purchase_unit TEXT NOT NULL,
	pack_size NUMERIC(12,3) NOT NULL,
	purchase_price NUMERIC(12,2) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS recipes (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	family_id UUID REFERENCES product_families(id) ON DELETE SET NULL,
	yield_qty NUMERIC(12,3) NOT NULL,
	yield_unit TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS recipe_lines (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
	ingredient_id UUID NOT NULL REFERENCES ingredients(id) ON DELETE RESTRICT,
	quantity NUMERIC(12,3) NOT NULL,
	unit TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
);
`

// mustTestDB connects once per test binary and skips everything when no test
// database is configured.
func mustTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	setupOnce.Do(func() {
		testDB, setupError = database.NewPostgreSQLDB(dsn)
		if setupError != nil {
			return
		}
		_, setupError = testDB.Exec(context.Background(), testSchema)
	})
	require.NoError(t, setupError)

	return testDB
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		TRUNCATE TABLE recipe_lines, recipes, ingredients, product_families,
			accounting_accounts, ledger_transactions, payroll_periods,
			payroll_monthly_data, employee_history, employees, users CASCADE
	`)
	require.NoError(t, err)
}
