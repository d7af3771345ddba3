package services

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
)

// LedgerSvcFacade defines operations on the daily cashbook itself. Edits and
// deletes of a linked entry propagate back through the source link to the
// originating customer transaction or expense.
type LedgerSvcFacade interface {
	// CreateEntry records an ad hoc, unlinked ledger entry.
	CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, creatorUserID string) (*domain.DailyLedgerEntry, error)

	// GetEntry retrieves a ledger entry by ID.
	GetEntry(ctx context.Context, entryID string) (*domain.DailyLedgerEntry, error)

	// ListEntriesByDate retrieves a day's entries in display order.
	ListEntriesByDate(ctx context.Context, date domain.CalendarDate) ([]domain.DailyLedgerEntry, error)

	// ListEntriesByDateRange retrieves entries with dates in [from, to].
	ListEntriesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.DailyLedgerEntry, error)

	// UpdateEntry applies edits; when the entry is linked, amount, date and
	// note changes are written through to the source record too. The returned
	// date is the earliest date whose balances are now stale.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateLedgerEntryRequest, updaterUserID string) (*domain.DailyLedgerEntry, domain.CalendarDate, error)

	// DeleteEntry removes the entry and, when linked, its source record. It
	// returns the entry's date for re-propagation.
	DeleteEntry(ctx context.Context, entryID string) (domain.CalendarDate, error)

	// CashbookSummary aggregates entry amounts by mode over a date range.
	CashbookSummary(ctx context.Context, from, to domain.CalendarDate) (*dto.CashbookSummaryResponse, error)
}
