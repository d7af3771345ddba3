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
	"github.com/khatasync/khata_backend/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for daily ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerColumns = `entry_id, date, mode, amount, party, note, source_type, source_id, created_at, created_by, last_updated_at, last_updated_by`

const updateLedgerEntryQuery = `
	UPDATE daily_ledger_entries
	SET date = $2, mode = $3, amount = $4, party = $5, note = $6,
	    last_updated_at = $7, last_updated_by = $8
	WHERE entry_id = $1;
`

func scanLedgerEntry(row pgx.Row) (*models.DailyLedgerEntry, error) {
	var m models.DailyLedgerEntry
	err := row.Scan(
		&m.EntryID, &m.Date, &m.Mode, &m.Amount, &m.Party, &m.Note, &m.SourceType, &m.SourceID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveEntry persists a new ledger entry, linked or unlinked.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.DailyLedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	_, err := r.Pool.Exec(ctx, insertLedgerEntryQuery,
		m.EntryID, m.Date, m.Mode, m.Amount, m.Party, m.Note, m.SourceType, m.SourceID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger entry "+m.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves a ledger entry by its primary key.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.DailyLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM daily_ledger_entries WHERE entry_id = $1;`
	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query ledger entry "+entryID, err)
	}
	d := mapping.ToDomainLedgerEntry(*m)
	return &d, nil
}

// FindEntryBySource retrieves the entry linked to the given source record.
func (r *PgxLedgerRepository) FindEntryBySource(ctx context.Context, source domain.SourceRef) (*domain.DailyLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM daily_ledger_entries WHERE source_type = $1 AND source_id = $2;`
	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, string(source.Type), source.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query ledger entry by source", err)
	}
	d := mapping.ToDomainLedgerEntry(*m)
	return &d, nil
}

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.DailyLedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list ledger entries", err)
	}
	defer rows.Close()

	var ms []models.DailyLedgerEntry
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate ledger entry rows", err)
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

// ListEntriesByDate retrieves a day's entries in creation order (display order).
func (r *PgxLedgerRepository) ListEntriesByDate(ctx context.Context, date domain.CalendarDate) ([]domain.DailyLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM daily_ledger_entries WHERE date = $1 ORDER BY created_at ASC;`
	return r.queryEntries(ctx, query, date.Time())
}

// ListEntriesByDateRange retrieves entries with dates in [from, to].
func (r *PgxLedgerRepository) ListEntriesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.DailyLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM daily_ledger_entries WHERE date >= $1 AND date <= $2 ORDER BY date ASC, created_at ASC;`
	return r.queryEntries(ctx, query, from.Time(), to.Time())
}

// ListDistinctDatesFrom retrieves the ascending distinct dates with at least
// one entry on or after from.
func (r *PgxLedgerRepository) ListDistinctDatesFrom(ctx context.Context, from domain.CalendarDate) ([]domain.CalendarDate, error) {
	query := `SELECT DISTINCT date FROM daily_ledger_entries WHERE date >= $1 ORDER BY date ASC;`
	rows, err := r.Pool.Query(ctx, query, from.Time())
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list distinct ledger dates", err)
	}
	defer rows.Close()

	var dates []domain.CalendarDate
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger date", err)
		}
		dates = append(dates, domain.CalendarDateOf(t))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate ledger dates", err)
	}
	return dates, nil
}

// UpdateEntry updates an existing ledger entry's mutable fields.
func (r *PgxLedgerRepository) UpdateEntry(ctx context.Context, entry domain.DailyLedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	tag, err := r.Pool.Exec(ctx, updateLedgerEntryQuery,
		m.EntryID, m.Date, m.Mode, m.Amount, m.Party, m.Note, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update ledger entry "+m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes a ledger entry.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM daily_ledger_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete ledger entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
