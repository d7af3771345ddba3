package repositories

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
)

// ExpenseReader defines read operations for expense data.
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByDateRange retrieves all expenses with dates in [from, to].
	ListExpensesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.Expense, error)

	// ListExpenseCategories retrieves the distinct categories used so far.
	ListExpenseCategories(ctx context.Context) ([]string, error)
}

// ExpenseWriter defines the synced write operations for expense data.
type ExpenseWriter interface {
	// SaveExpenseWithEntry inserts an expense and its paired ledger entry atomically.
	SaveExpenseWithEntry(ctx context.Context, expense domain.Expense, entry domain.DailyLedgerEntry) error

	// UpdateExpenseWithEntry updates an expense and, when entry is non-nil,
	// its linked ledger entry in the same database transaction.
	UpdateExpenseWithEntry(ctx context.Context, expense domain.Expense, entry *domain.DailyLedgerEntry) error

	// DeleteExpenseWithEntry deletes the linked ledger entry (when entryID is
	// non-empty) and then the expense, atomically.
	DeleteExpenseWithEntry(ctx context.Context, expenseID, entryID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
