package repositories

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data.
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByName retrieves a customer by exact display name (case-insensitive).
	FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error)

	// ListCustomers retrieves customers, optionally filtered by contact type.
	ListCustomers(ctx context.Context, contactType *domain.ContactType) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data.
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates an existing customer's fields.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomerCascade deletes a customer, its transactions, and their
	// linked ledger entries within a single database transaction. It returns
	// the earliest transaction date that was removed (zero when the customer
	// had no transactions) so the caller can re-propagate balances.
	DeleteCustomerCascade(ctx context.Context, customerID string) (domain.CalendarDate, error)
}

// RenamePropagator applies a customer display-name change to denormalized
// text: ledger entry party fields (exact case-insensitive match), ledger
// entry notes, and the customer's own transaction notes (case-insensitive
// substring replace), all within one database transaction. This is a
// best-effort text rewrite, not a referential-integrity guarantee; a stricter
// implementation can replace it behind this interface.
type RenamePropagator interface {
	ApplyRename(ctx context.Context, customerID, oldName, newName string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
	RenamePropagator
}

// CustomerRepositoryWithTx extends CustomerRepositoryFacade with transaction capabilities.
type CustomerRepositoryWithTx interface {
	CustomerRepositoryFacade
	TransactionManager
}
