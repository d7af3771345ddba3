package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
	"github.com/khatasync/khata_backend/internal/utils/mapping"
)

type PgxSnapshotRepository struct {
	BaseRepository
}

// newPgxSnapshotRepository creates a repository for whole-dataset export and restore.
func newPgxSnapshotRepository(pool *pgxpool.Pool) portsrepo.SnapshotRepository {
	return &PgxSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SnapshotRepository = (*PgxSnapshotRepository)(nil)

// ExportAll reads every table once and assembles a versioned snapshot.
func (r *PgxSnapshotRepository) ExportAll(ctx context.Context) (*domain.Snapshot, error) {
	snapshot := domain.Snapshot{
		Version:    domain.SnapshotVersion,
		ExportedAt: time.Now().UTC(),
	}

	customers, err := collectRows(ctx, r.Pool, `SELECT `+customerColumns+` FROM customers ORDER BY created_at ASC;`, scanCustomer)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to export customers", err)
	}
	snapshot.Customers = mapping.ToDomainCustomerSlice(customers)

	transactions, err := collectRows(ctx, r.Pool, `SELECT `+transactionColumns+` FROM customer_transactions ORDER BY date ASC, created_at ASC;`, scanTransaction)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to export transactions", err)
	}
	snapshot.Transactions = mapping.ToDomainTransactionSlice(transactions)

	expenses, err := collectRows(ctx, r.Pool, `SELECT `+expenseColumns+` FROM expenses ORDER BY date ASC, created_at ASC;`, scanExpense)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to export expenses", err)
	}
	snapshot.Expenses = mapping.ToDomainExpenseSlice(expenses)

	trades, err := collectRows(ctx, r.Pool, `SELECT `+tradeColumns+` FROM trade_transactions ORDER BY date ASC, created_at ASC;`, scanTrade)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to export trades", err)
	}
	snapshot.Trades = mapping.ToDomainTradeSlice(trades)

	entries, err := collectRows(ctx, r.Pool, `SELECT `+ledgerColumns+` FROM daily_ledger_entries ORDER BY date ASC, created_at ASC;`, scanLedgerEntry)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to export ledger entries", err)
	}
	snapshot.Entries = mapping.ToDomainLedgerEntrySlice(entries)

	balances, err := collectRows(ctx, r.Pool, `SELECT `+balanceColumns+` FROM daily_balances ORDER BY date ASC;`, scanBalance)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to export balances", err)
	}
	snapshot.Balances = mapping.ToDomainBalanceSlice(balances)

	return &snapshot, nil
}

// RestoreAll replaces the contents of every table with the snapshot's, inside
// a single transaction so a failed restore leaves the existing data intact.
func (r *PgxSnapshotRepository) RestoreAll(ctx context.Context, snapshot domain.Snapshot) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin restore transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `TRUNCATE customers, customer_transactions, expenses, trade_transactions, daily_ledger_entries, daily_balances;`)
	if err != nil {
		return apperrors.NewAppError(500, "failed to clear tables for restore", err)
	}

	batch := &pgx.Batch{}
	for _, c := range snapshot.Customers {
		m := mapping.ToModelCustomer(c)
		batch.Queue(`INSERT INTO customers (`+customerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
			m.CustomerID, m.Name, m.Phone, m.Address, m.ContactType, m.OpeningBalance,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	}
	for _, t := range snapshot.Transactions {
		m := mapping.ToModelTransaction(t)
		batch.Queue(insertTransactionQuery,
			m.TransactionID, m.CustomerID, m.Direction, m.Amount, m.Date, m.Channel, m.Note, m.VoiceNotePath,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	}
	for _, e := range snapshot.Expenses {
		m := mapping.ToModelExpense(e)
		batch.Queue(`INSERT INTO expenses (`+expenseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
			m.ExpenseID, m.Date, m.Category, m.Amount, m.Channel, m.Note,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	}
	for _, t := range snapshot.Trades {
		m := mapping.ToModelTrade(t)
		batch.Queue(`INSERT INTO trade_transactions (`+tradeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`,
			m.TradeID, m.FarmName, m.TradeType, m.Item, m.Quantity, m.Rate, m.BuyRate,
			m.Total, m.Profit, m.Date, m.Note,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	}
	for _, e := range snapshot.Entries {
		m := mapping.ToModelLedgerEntry(e)
		batch.Queue(insertLedgerEntryQuery,
			m.EntryID, m.Date, m.Mode, m.Amount, m.Party, m.Note, m.SourceType, m.SourceID,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	}
	for _, b := range snapshot.Balances {
		m := mapping.ToModelBalance(b)
		batch.Queue(`INSERT INTO daily_balances (`+balanceColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			m.BalanceID, m.Date, m.OpeningCash, m.OpeningBank, m.ClosingCash, m.ClosingBank,
			m.Note, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to restore snapshot rows", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit restore transaction", err)
	}
	return nil
}

// collectRows runs a query and scans every row with the given helper.
func collectRows[T any](ctx context.Context, pool *pgxpool.Pool, query string, scan func(pgx.Row) (*T, error)) ([]T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}
