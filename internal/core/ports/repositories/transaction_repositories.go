package repositories

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
)

// TransactionReader defines read operations for customer transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.CustomerTransaction, error)

	// ListTransactionsByCustomer retrieves a paginated list of a customer's
	// transactions (newest first) using token-based pagination. It returns
	// the transactions, a token for the next page, and an error.
	ListTransactionsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.CustomerTransaction, *string, error)

	// ListTransactionsByDateRange retrieves all transactions with dates in [from, to].
	ListTransactionsByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.CustomerTransaction, error)
}

// TransactionWriter defines the synced write operations for customer
// transaction data. The multi-record variants run inside a single database
// transaction so the source record and its ledger entry change together.
type TransactionWriter interface {
	// SaveTransactionWithEntry inserts a transaction and its paired ledger entry atomically.
	SaveTransactionWithEntry(ctx context.Context, txn domain.CustomerTransaction, entry domain.DailyLedgerEntry) error

	// UpdateTransactionWithEntry updates a transaction and, when entry is
	// non-nil, its linked ledger entry in the same database transaction.
	UpdateTransactionWithEntry(ctx context.Context, txn domain.CustomerTransaction, entry *domain.DailyLedgerEntry) error

	// DeleteTransactionWithEntry deletes the linked ledger entry (when
	// entryID is non-empty) and then the transaction, atomically. The entry
	// goes first so a failure cannot leave it orphaned.
	DeleteTransactionWithEntry(ctx context.Context, transactionID, entryID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
