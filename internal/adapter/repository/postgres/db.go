package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=finance sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Migrate creates the schema when it does not exist yet
func (db *DB) Migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS investments (
			id BIGSERIAL PRIMARY KEY,
			amount NUMERIC(18,2) NOT NULL,
			date DATE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'General',
			version INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS investment_history (
			id BIGSERIAL PRIMARY KEY,
			investment_id BIGINT NOT NULL,
			amount NUMERIC(18,2) NOT NULL,
			date DATE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'General',
			version INTEGER NOT NULL,
			change_type TEXT NOT NULL,
			change_description TEXT NOT NULL DEFAULT '',
			changed_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_investment_history_investment
			ON investment_history (investment_id)`,
		`CREATE TABLE IF NOT EXISTS monthly_contributions (
			id BIGSERIAL PRIMARY KEY,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			amount NUMERIC(18,2) NOT NULL DEFAULT 0,
			cumulative NUMERIC(18,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (year, month)
		)`,
		`CREATE TABLE IF NOT EXISTS loans (
			id BIGSERIAL PRIMARY KEY,
			principal_amount NUMERIC(18,2) NOT NULL,
			current_balance NUMERIC(18,2) NOT NULL,
			interest_rate NUMERIC(8,4) NOT NULL DEFAULT 0,
			monthly_payment NUMERIC(18,2) NOT NULL DEFAULT 0,
			start_date DATE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			lender TEXT NOT NULL DEFAULT '',
			loan_type TEXT NOT NULL DEFAULT 'General',
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS loan_payments (
			id BIGSERIAL PRIMARY KEY,
			loan_id BIGINT NOT NULL,
			payment_amount NUMERIC(18,2) NOT NULL,
			principal_paid NUMERIC(18,2) NOT NULL,
			payment_date DATE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id BIGSERIAL PRIMARY KEY,
			goal_name TEXT NOT NULL,
			target_amount NUMERIC(18,2) NOT NULL,
			current_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
			target_date DATE,
			goal_type TEXT NOT NULL DEFAULT 'Savings',
			description TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
