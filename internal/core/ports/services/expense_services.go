package services

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
)

// ExpenseSvcFacade defines the synced expense operations. Expense entries
// only ever take money out (CASH_OUT or BANK_OUT).
type ExpenseSvcFacade interface {
	// SaveExpenseWithSync inserts an expense and its paired ledger entry atomically.
	SaveExpenseWithSync(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByDateRange retrieves expenses with dates in [from, to].
	ListExpensesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.Expense, error)

	// ListCategories retrieves the distinct expense categories used so far.
	ListCategories(ctx context.Context) ([]string, error)

	// UpdateExpenseWithSync applies edits and keeps the linked ledger entry
	// consistent; a missing linked entry is tolerated and logged. The
	// returned date is the earliest date whose balances are now stale.
	UpdateExpenseWithSync(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, domain.CalendarDate, error)

	// DeleteExpenseWithSync deletes the linked ledger entry first, then the
	// expense. It returns the expense's date for re-propagation.
	DeleteExpenseWithSync(ctx context.Context, expenseID string) (domain.CalendarDate, error)
}
