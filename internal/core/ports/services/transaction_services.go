package services

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
)

// TransactionSvcFacade defines the synced customer-transaction operations.
// Balance propagation is never run inside these operations; callers invoke
// BalanceSvcFacade.PropagateBalancesForward with the returned date afterwards.
type TransactionSvcFacade interface {
	// RecordTransactionWithSync validates the request, inserts the
	// transaction, and inserts its paired ledger entry, atomically.
	RecordTransactionWithSync(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.CustomerTransaction, error)

	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, transactionID string) (*domain.CustomerTransaction, error)

	// ListTransactionsByCustomer retrieves a page of a customer's khata.
	ListTransactionsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.CustomerTransaction, *string, error)

	// UpdateTransactionWithSync applies edits and keeps the linked ledger
	// entry consistent. A missing linked entry is tolerated and logged. The
	// returned date is the earliest date whose balances are now stale.
	UpdateTransactionWithSync(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.CustomerTransaction, domain.CalendarDate, error)

	// DeleteTransactionWithSync deletes the linked ledger entry first, then
	// the transaction. It returns the transaction's date for re-propagation.
	DeleteTransactionWithSync(ctx context.Context, transactionID string) (domain.CalendarDate, error)
}
