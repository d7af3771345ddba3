package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
	"github.com/khatasync/khata_backend/internal/models"
	"github.com/khatasync/khata_backend/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, date, category, amount, channel, note, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID, &m.Date, &m.Category, &m.Amount, &m.Channel, &m.Note,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveExpenseWithEntry inserts an expense and its paired ledger entry inside
// a single database transaction.
func (r *PgxExpenseRepository) SaveExpenseWithEntry(ctx context.Context, expense domain.Expense, entry domain.DailyLedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	me := mapping.ToModelExpense(expense)
	_, err = tx.Exec(ctx, `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`, me.ExpenseID, me.Date, me.Category, me.Amount, me.Channel, me.Note,
		me.CreatedAt, me.CreatedBy, me.LastUpdatedAt, me.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert expense "+me.ExpenseID, err)
	}

	ml := mapping.ToModelLedgerEntry(entry)
	_, err = tx.Exec(ctx, insertLedgerEntryQuery,
		ml.EntryID, ml.Date, ml.Mode, ml.Amount, ml.Party, ml.Note, ml.SourceType, ml.SourceID,
		ml.CreatedAt, ml.CreatedBy, ml.LastUpdatedAt, ml.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger entry for expense "+me.ExpenseID, err)
	}

	return r.Commit(ctx, tx)
}

// FindExpenseByID retrieves an expense by its primary key.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query expense "+expenseID, err)
	}
	d := mapping.ToDomainExpense(*m)
	return &d, nil
}

// ListExpensesByDateRange retrieves expenses with dates in [from, to].
func (r *PgxExpenseRepository) ListExpensesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE date >= $1 AND date <= $2 ORDER BY date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, from.Time(), to.Time())
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list expenses by date range", err)
	}
	defer rows.Close()

	var ms []models.Expense
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate expense rows", err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

// ListExpenseCategories retrieves the distinct categories used so far.
func (r *PgxExpenseRepository) ListExpenseCategories(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT category FROM expenses ORDER BY category ASC;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list expense categories", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate expense categories", err)
	}
	return categories, nil
}

// UpdateExpenseWithEntry updates an expense and, when entry is non-nil, its
// linked ledger entry in the same database transaction.
func (r *PgxExpenseRepository) UpdateExpenseWithEntry(ctx context.Context, expense domain.Expense, entry *domain.DailyLedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	me := mapping.ToModelExpense(expense)
	tag, err := tx.Exec(ctx, `
		UPDATE expenses
		SET date = $2, category = $3, amount = $4, channel = $5, note = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE expense_id = $1;
	`, me.ExpenseID, me.Date, me.Category, me.Amount, me.Channel, me.Note,
		me.LastUpdatedAt, me.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expense "+me.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if entry != nil {
		ml := mapping.ToModelLedgerEntry(*entry)
		_, err = tx.Exec(ctx, updateLedgerEntryQuery,
			ml.EntryID, ml.Date, ml.Mode, ml.Amount, ml.Party, ml.Note,
			ml.LastUpdatedAt, ml.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update ledger entry "+ml.EntryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteExpenseWithEntry deletes the linked ledger entry first, then the
// expense, inside one database transaction.
func (r *PgxExpenseRepository) DeleteExpenseWithEntry(ctx context.Context, expenseID, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if entryID != "" {
		_, err = tx.Exec(ctx, `DELETE FROM daily_ledger_entries WHERE entry_id = $1;`, entryID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to delete ledger entry "+entryID, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
