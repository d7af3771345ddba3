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
	"github.com/khatasync/khata_backend/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for customer transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, customer_id, direction, amount, date, channel, note, voice_note_path, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.CustomerTransaction, error) {
	var m models.CustomerTransaction
	err := row.Scan(
		&m.TransactionID, &m.CustomerID, &m.Direction, &m.Amount, &m.Date, &m.Channel,
		&m.Note, &m.VoiceNotePath, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

const insertTransactionQuery = `
	INSERT INTO customer_transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

const insertLedgerEntryQuery = `
	INSERT INTO daily_ledger_entries (` + ledgerColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

// SaveTransactionWithEntry inserts a transaction and its paired ledger entry
// inside a single database transaction, so either both records exist or
// neither does.
func (r *PgxTransactionRepository) SaveTransactionWithEntry(ctx context.Context, txn domain.CustomerTransaction, entry domain.DailyLedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	mt := mapping.ToModelTransaction(txn)
	_, err = tx.Exec(ctx, insertTransactionQuery,
		mt.TransactionID, mt.CustomerID, mt.Direction, mt.Amount, mt.Date, mt.Channel,
		mt.Note, mt.VoiceNotePath, mt.CreatedAt, mt.CreatedBy, mt.LastUpdatedAt, mt.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+mt.TransactionID, err)
	}

	me := mapping.ToModelLedgerEntry(entry)
	_, err = tx.Exec(ctx, insertLedgerEntryQuery,
		me.EntryID, me.Date, me.Mode, me.Amount, me.Party, me.Note, me.SourceType, me.SourceID,
		me.CreatedAt, me.CreatedBy, me.LastUpdatedAt, me.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger entry for transaction "+mt.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its primary key.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CustomerTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM customer_transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query transaction "+transactionID, err)
	}
	d := mapping.ToDomainTransaction(*m)
	return &d, nil
}

// ListTransactionsByCustomer retrieves a page of a customer's transactions,
// newest first, keyed on (date, created_at) for a stable cursor.
func (r *PgxTransactionRepository) ListTransactionsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.CustomerTransaction, *string, error) {
	query := `SELECT ` + transactionColumns + ` FROM customer_transactions WHERE customer_id = $1`
	args := []any{customerID}

	if nextToken != nil && *nextToken != "" {
		date, createdAt, err := pagination.DecodeTransactionToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (date, created_at) < ($2, $3)`
		args = append(args, date.Time(), createdAt)
	}

	query += ` ORDER BY date DESC, created_at DESC LIMIT $` + placeholder(len(args)+1) + `;`
	args = append(args, limit+1) // Fetch one extra to know whether a next page exists

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list transactions for customer "+customerID, err)
	}
	defer rows.Close()

	var ms []models.CustomerTransaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate transaction rows", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeTransactionToken(domain.CalendarDateOf(last.Date), last.CreatedAt)
		token = &t
	}
	return mapping.ToDomainTransactionSlice(ms), token, nil
}

// ListTransactionsByDateRange retrieves all transactions with dates in [from, to].
func (r *PgxTransactionRepository) ListTransactionsByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.CustomerTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM customer_transactions WHERE date >= $1 AND date <= $2 ORDER BY date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, from.Time(), to.Time())
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list transactions by date range", err)
	}
	defer rows.Close()

	var ms []models.CustomerTransaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate transaction rows", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// UpdateTransactionWithEntry updates a transaction and, when entry is
// non-nil, its linked ledger entry in the same database transaction.
func (r *PgxTransactionRepository) UpdateTransactionWithEntry(ctx context.Context, txn domain.CustomerTransaction, entry *domain.DailyLedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	mt := mapping.ToModelTransaction(txn)
	tag, err := tx.Exec(ctx, `
		UPDATE customer_transactions
		SET direction = $2, amount = $3, date = $4, channel = $5, note = $6, voice_note_path = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE transaction_id = $1;
	`, mt.TransactionID, mt.Direction, mt.Amount, mt.Date, mt.Channel, mt.Note, mt.VoiceNotePath,
		mt.LastUpdatedAt, mt.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+mt.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if entry != nil {
		me := mapping.ToModelLedgerEntry(*entry)
		_, err = tx.Exec(ctx, updateLedgerEntryQuery,
			me.EntryID, me.Date, me.Mode, me.Amount, me.Party, me.Note,
			me.LastUpdatedAt, me.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update ledger entry "+me.EntryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteTransactionWithEntry deletes the linked ledger entry first, then the
// transaction, inside one database transaction.
func (r *PgxTransactionRepository) DeleteTransactionWithEntry(ctx context.Context, transactionID, entryID string) error {
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

	tag, err := tx.Exec(ctx, `DELETE FROM customer_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
