package repositories

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
)

// BalanceReader defines read operations for daily balance snapshots.
type BalanceReader interface {
	// FindBalanceByDate retrieves the balance row for the given date, or
	// apperrors.ErrNotFound when the date has no row yet.
	FindBalanceByDate(ctx context.Context, date domain.CalendarDate) (*domain.DailyBalance, error)

	// ListBalancesFrom retrieves all balance rows with date >= from, ordered
	// ascending by date. An empty slice means there is nothing to propagate.
	ListBalancesFrom(ctx context.Context, from domain.CalendarDate) ([]domain.DailyBalance, error)

	// ListBalancesByDateRange retrieves balance rows with dates in [from, to],
	// ordered ascending by date.
	ListBalancesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.DailyBalance, error)
}

// BalanceWriter defines write operations for daily balance snapshots.
type BalanceWriter interface {
	// UpsertBalanceByDate inserts the row or, when its date already has one,
	// replaces that row's balances and note. The date is a unique key.
	UpsertBalanceByDate(ctx context.Context, balance domain.DailyBalance) error

	// UpdateBalance rewrites an existing row identified by its primary key.
	UpdateBalance(ctx context.Context, balance domain.DailyBalance) error
}

// BalanceRepositoryFacade combines all balance repository interfaces.
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
