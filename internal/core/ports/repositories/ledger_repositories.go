package repositories

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
)

// LedgerReader defines read operations for daily ledger entries.
type LedgerReader interface {
	// FindEntryByID retrieves a specific ledger entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.DailyLedgerEntry, error)

	// FindEntryBySource retrieves the ledger entry linked to the given source
	// record, or apperrors.ErrNotFound when no entry carries that link.
	FindEntryBySource(ctx context.Context, source domain.SourceRef) (*domain.DailyLedgerEntry, error)

	// ListEntriesByDate retrieves all entries on a single date, ordered by
	// creation time (display order; balance math ignores it).
	ListEntriesByDate(ctx context.Context, date domain.CalendarDate) ([]domain.DailyLedgerEntry, error)

	// ListEntriesByDateRange retrieves all entries with dates in [from, to].
	ListEntriesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.DailyLedgerEntry, error)

	// ListDistinctDatesFrom retrieves, in ascending order, the distinct dates
	// on or after the given date that have at least one ledger entry.
	ListDistinctDatesFrom(ctx context.Context, from domain.CalendarDate) ([]domain.CalendarDate, error)
}

// LedgerWriter defines write operations for daily ledger entries.
type LedgerWriter interface {
	// SaveEntry persists a new ledger entry (linked or unlinked).
	SaveEntry(ctx context.Context, entry domain.DailyLedgerEntry) error

	// UpdateEntry updates an existing ledger entry's fields.
	UpdateEntry(ctx context.Context, entry domain.DailyLedgerEntry) error

	// DeleteEntry removes a ledger entry.
	DeleteEntry(ctx context.Context, entryID string) error
}

// LedgerRepositoryFacade combines all ledger-entry repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
