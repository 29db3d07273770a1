package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// investmentRepository implements domain.InvestmentRepository
type investmentRepository struct {
	db *DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *DB) domain.InvestmentRepository {
	return &investmentRepository{db: db}
}

func (r *investmentRepository) Create(ctx context.Context, inv *domain.Investment) error {
	query := `
		INSERT INTO investments (amount, date, description, category, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		inv.Amount.String(),
		inv.Date,
		inv.Description,
		inv.Category,
		inv.Version,
		inv.CreatedAt,
		inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

func (r *investmentRepository) GetByID(ctx context.Context, id int64) (*domain.Investment, error) {
	query := `
		SELECT id, amount, date, description, category, version, created_at, updated_at
		FROM investments
		WHERE id = $1
	`

	inv, err := scanInvestment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get investment by ID: %w", err)
	}
	return inv, nil
}

func (r *investmentRepository) List(ctx context.Context) ([]*domain.Investment, error) {
	query := `
		SELECT id, amount, date, description, category, version, created_at, updated_at
		FROM investments
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	investments := make([]*domain.Investment, 0)
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

func (r *investmentRepository) Update(ctx context.Context, inv *domain.Investment) error {
	query := `
		UPDATE investments
		SET amount = $1, date = $2, description = $3, category = $4, version = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		inv.Amount.String(),
		inv.Date,
		inv.Description,
		inv.Category,
		inv.Version,
		inv.UpdatedAt,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment: %w", err)
	}
	return requireRow(result)
}

func (r *investmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM investments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	return requireRow(result)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInvestment(row rowScanner) (*domain.Investment, error) {
	var inv domain.Investment
	var amountStr string
	var date time.Time

	if err := row.Scan(
		&inv.ID,
		&amountStr,
		&date,
		&inv.Description,
		&inv.Category,
		&inv.Version,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	inv.Amount = amount
	inv.Date = date.Format(domain.DateLayout)
	return &inv, nil
}

// requireRow maps a zero-row write to domain.ErrNotFound
func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// investmentHistoryRepository implements domain.InvestmentHistoryRepository
type investmentHistoryRepository struct {
	db *DB
}

// NewInvestmentHistoryRepository creates a new investment history repository
func NewInvestmentHistoryRepository(db *DB) domain.InvestmentHistoryRepository {
	return &investmentHistoryRepository{db: db}
}

func (r *investmentHistoryRepository) Append(ctx context.Context, entry *domain.InvestmentHistory) error {
	query := `
		INSERT INTO investment_history
			(investment_id, amount, date, description, category, version, change_type, change_description, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		entry.InvestmentID,
		entry.Amount.String(),
		entry.Date,
		entry.Description,
		entry.Category,
		entry.Version,
		string(entry.ChangeType),
		entry.ChangeNote,
		entry.ChangedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}

func (r *investmentHistoryRepository) ListByInvestment(ctx context.Context, investmentID int64) ([]*domain.InvestmentHistory, error) {
	query := `
		SELECT id, investment_id, amount, date, description, category, version, change_type, change_description, changed_at
		FROM investment_history
		WHERE investment_id = $1
		ORDER BY changed_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, investmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.InvestmentHistory, 0)
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *investmentHistoryRepository) GetVersion(ctx context.Context, investmentID int64, version int) (*domain.InvestmentHistory, error) {
	query := `
		SELECT id, investment_id, amount, date, description, category, version, change_type, change_description, changed_at
		FROM investment_history
		WHERE investment_id = $1 AND version = $2
		ORDER BY id ASC
		LIMIT 1
	`

	entry, err := scanHistoryEntry(r.db.QueryRowContext(ctx, query, investmentID, version))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get history version: %w", err)
	}
	return entry, nil
}

func scanHistoryEntry(row rowScanner) (*domain.InvestmentHistory, error) {
	var entry domain.InvestmentHistory
	var amountStr string
	var changeType string
	var date time.Time

	if err := row.Scan(
		&entry.ID,
		&entry.InvestmentID,
		&amountStr,
		&date,
		&entry.Description,
		&entry.Category,
		&entry.Version,
		&changeType,
		&entry.ChangeNote,
		&entry.ChangedAt,
	); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	entry.Amount = amount
	entry.ChangeType = domain.ChangeType(changeType)
	entry.Date = date.Format(domain.DateLayout)
	return &entry, nil
}
