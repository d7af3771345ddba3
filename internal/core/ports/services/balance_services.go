package services

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// BalanceSvcFacade is the balance propagation engine: the only component
// allowed to mutate DailyBalance rows in response to ledger changes.
type BalanceSvcFacade interface {
	// PropagateBalancesForward recomputes every existing balance row with
	// date >= from, carrying closings into the next row's openings. The
	// earliest visited row keeps its stored opening values as the baseline.
	// Rows are only written when their values actually changed. It never
	// creates rows; a date with transactions but no row stays untouched.
	PropagateBalancesForward(ctx context.Context, from domain.CalendarDate) error

	// RecalculateFromDate is the gap-filling bulk variant used after data
	// import: it walks the distinct dates that have ledger entries on or
	// after startDate, seeding from the given opening balances and creating
	// a row per active date. Days without entries get no row.
	RecalculateFromDate(ctx context.Context, startDate domain.CalendarDate, openingCash, openingBank decimal.Decimal) error

	// SetOpeningBalance creates or overrides the row for a date with user-set
	// opening values, then leaves re-propagation to the caller.
	SetOpeningBalance(ctx context.Context, req dto.SetOpeningBalanceRequest, userID string) (*domain.DailyBalance, error)

	// GetBalanceByDate retrieves the balance row for a date.
	GetBalanceByDate(ctx context.Context, date domain.CalendarDate) (*domain.DailyBalance, error)

	// ListBalancesByDateRange retrieves balance rows in [from, to] ascending.
	ListBalancesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.DailyBalance, error)
}
