package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
	"github.com/khatasync/khata_backend/internal/models"
	"github.com/khatasync/khata_backend/internal/utils"
	"github.com/khatasync/khata_backend/internal/utils/mapping"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryWithTx {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryWithTx = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, name, phone, address, contact_type, opening_balance, created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID, &m.Name, &m.Phone, &m.Address, &m.ContactType, &m.OpeningBalance,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCustomer persists a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.Name, m.Phone, m.Address, m.ContactType, m.OpeningBalance,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert customer "+m.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by its primary key.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query customer "+customerID, err)
	}
	d := mapping.ToDomainCustomer(*m)
	return &d, nil
}

// FindCustomerByName retrieves a customer by exact display name, ignoring case.
func (r *PgxCustomerRepository) FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE LOWER(name) = LOWER($1);`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query customer by name", err)
	}
	d := mapping.ToDomainCustomer(*m)
	return &d, nil
}

// ListCustomers retrieves customers ordered by name, optionally filtered by contact type.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, contactType *domain.ContactType) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}
	if contactType != nil {
		query += ` WHERE contact_type = $1 OR contact_type = 'BOTH'`
		args = append(args, string(*contactType))
	}
	query += ` ORDER BY name ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list customers", err)
	}
	defer rows.Close()

	var ms []models.Customer
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan customer row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate customer rows", err)
	}
	return mapping.ToDomainCustomerSlice(ms), nil
}

// UpdateCustomer updates an existing customer's fields.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, contact_type = $5, opening_balance = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.Name, m.Phone, m.Address, m.ContactType, m.OpeningBalance,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update customer "+m.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCustomerCascade deletes a customer, its transactions, and their
// linked ledger entries within one transaction. The ledger entries go first
// so a partial failure cannot orphan them.
func (r *PgxCustomerRepository) DeleteCustomerCascade(ctx context.Context, customerID string) (domain.CalendarDate, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.CalendarDate{}, err
	}
	defer r.Rollback(ctx, tx)

	var earliest *time.Time
	err = tx.QueryRow(ctx, `SELECT MIN(date) FROM customer_transactions WHERE customer_id = $1;`, customerID).Scan(&earliest)
	if err != nil {
		return domain.CalendarDate{}, apperrors.NewAppError(500, "failed to find earliest transaction date", err)
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM daily_ledger_entries
		WHERE source_type IN ('CUSTOMER', 'SUPPLIER')
		  AND source_id IN (SELECT transaction_id FROM customer_transactions WHERE customer_id = $1);
	`, customerID)
	if err != nil {
		return domain.CalendarDate{}, apperrors.NewAppError(500, "failed to delete linked ledger entries", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM customer_transactions WHERE customer_id = $1;`, customerID)
	if err != nil {
		return domain.CalendarDate{}, apperrors.NewAppError(500, "failed to delete customer transactions", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return domain.CalendarDate{}, apperrors.NewAppError(500, "failed to delete customer "+customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.CalendarDate{}, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.CalendarDate{}, err
	}

	if earliest == nil {
		return domain.CalendarDate{}, nil
	}
	return domain.CalendarDateOf(*earliest), nil
}

// ApplyRename rewrites denormalized customer-name text in one transaction:
// ledger party fields on exact match, ledger and transaction notes on
// substring match. Note rewriting happens in Go so the replacement is a
// literal, not a SQL pattern.
func (r *PgxCustomerRepository) ApplyRename(ctx context.Context, customerID, oldName, newName string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `UPDATE daily_ledger_entries SET party = $2 WHERE LOWER(party) = LOWER($1);`, oldName, newName)
	if err != nil {
		return apperrors.NewAppError(500, "failed to rewrite ledger parties", err)
	}

	if err := rewriteNotes(ctx, tx,
		`SELECT entry_id, note FROM daily_ledger_entries WHERE note ILIKE '%' || $1 || '%'`,
		`UPDATE daily_ledger_entries SET note = $2 WHERE entry_id = $1`,
		[]any{oldName}, oldName, newName,
	); err != nil {
		return apperrors.NewAppError(500, "failed to rewrite ledger notes", err)
	}

	if err := rewriteNotes(ctx, tx,
		`SELECT transaction_id, note FROM customer_transactions WHERE customer_id = $2 AND note ILIKE '%' || $1 || '%'`,
		`UPDATE customer_transactions SET note = $2 WHERE transaction_id = $1`,
		[]any{oldName, customerID}, oldName, newName,
	); err != nil {
		return apperrors.NewAppError(500, "failed to rewrite transaction notes", err)
	}

	return r.Commit(ctx, tx)
}

// rewriteNotes fetches (id, note) rows via selectQuery, applies the
// case-insensitive replacement, and writes each changed note back.
func rewriteNotes(ctx context.Context, tx pgx.Tx, selectQuery, updateQuery string, selectArgs []any, oldName, newName string) error {
	rows, err := tx.Query(ctx, selectQuery, selectArgs...)
	if err != nil {
		return err
	}
	type noteRow struct {
		id   string
		note string
	}
	var pending []noteRow
	for rows.Next() {
		var nr noteRow
		if err := rows.Scan(&nr.id, &nr.note); err != nil {
			rows.Close()
			return err
		}
		pending = append(pending, nr)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, nr := range pending {
		rewritten := utils.ReplaceAllFold(nr.note, oldName, newName)
		if rewritten == nr.note {
			continue
		}
		if _, err := tx.Exec(ctx, updateQuery, nr.id, rewritten); err != nil {
			return err
		}
	}
	return nil
}
