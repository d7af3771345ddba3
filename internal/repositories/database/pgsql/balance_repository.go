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

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a new repository for daily balance snapshots.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

const balanceColumns = `balance_id, date, opening_cash, opening_bank, closing_cash, closing_bank, note, created_at, created_by, last_updated_at, last_updated_by`

func scanBalance(row pgx.Row) (*models.DailyBalance, error) {
	var m models.DailyBalance
	err := row.Scan(
		&m.BalanceID, &m.Date, &m.OpeningCash, &m.OpeningBank, &m.ClosingCash, &m.ClosingBank,
		&m.Note, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindBalanceByDate retrieves the balance row for a date.
func (r *PgxBalanceRepository) FindBalanceByDate(ctx context.Context, date domain.CalendarDate) (*domain.DailyBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM daily_balances WHERE date = $1;`
	m, err := scanBalance(r.Pool.QueryRow(ctx, query, date.Time()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query balance for "+date.String(), err)
	}
	d := mapping.ToDomainBalance(*m)
	return &d, nil
}

func (r *PgxBalanceRepository) queryBalances(ctx context.Context, query string, args ...any) ([]domain.DailyBalance, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list balances", err)
	}
	defer rows.Close()

	var ms []models.DailyBalance
	for rows.Next() {
		m, err := scanBalance(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate balance rows", err)
	}
	return mapping.ToDomainBalanceSlice(ms), nil
}

// ListBalancesFrom retrieves all balance rows with date >= from, ascending.
func (r *PgxBalanceRepository) ListBalancesFrom(ctx context.Context, from domain.CalendarDate) ([]domain.DailyBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM daily_balances WHERE date >= $1 ORDER BY date ASC;`
	return r.queryBalances(ctx, query, from.Time())
}

// ListBalancesByDateRange retrieves balance rows with dates in [from, to], ascending.
func (r *PgxBalanceRepository) ListBalancesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.DailyBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM daily_balances WHERE date >= $1 AND date <= $2 ORDER BY date ASC;`
	return r.queryBalances(ctx, query, from.Time(), to.Time())
}

// UpsertBalanceByDate inserts the row or replaces the balances and note of
// the row already holding its date.
func (r *PgxBalanceRepository) UpsertBalanceByDate(ctx context.Context, balance domain.DailyBalance) error {
	m := mapping.ToModelBalance(balance)
	query := `
		INSERT INTO daily_balances (` + balanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (date) DO UPDATE
		SET opening_cash = EXCLUDED.opening_cash,
		    opening_bank = EXCLUDED.opening_bank,
		    closing_cash = EXCLUDED.closing_cash,
		    closing_bank = EXCLUDED.closing_bank,
		    note = EXCLUDED.note,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BalanceID, m.Date, m.OpeningCash, m.OpeningBank, m.ClosingCash, m.ClosingBank,
		m.Note, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert balance for "+balance.Date.String(), err)
	}
	return nil
}

// UpdateBalance rewrites an existing row identified by its primary key.
func (r *PgxBalanceRepository) UpdateBalance(ctx context.Context, balance domain.DailyBalance) error {
	m := mapping.ToModelBalance(balance)
	query := `
		UPDATE daily_balances
		SET opening_cash = $2, opening_bank = $3, closing_cash = $4, closing_bank = $5,
		    note = $6, last_updated_at = $7, last_updated_by = $8
		WHERE balance_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BalanceID, m.OpeningCash, m.OpeningBank, m.ClosingCash, m.ClosingBank,
		m.Note, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update balance "+m.BalanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
