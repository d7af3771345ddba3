package services

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
)

// CustomerSvcFacade defines the customer operations, including the rename
// propagation that keeps historical ledger text consistent.
type CustomerSvcFacade interface {
	// CreateCustomer creates a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// GetCustomer retrieves a customer by ID.
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves customers, optionally filtered by contact type.
	ListCustomers(ctx context.Context, contactType *domain.ContactType) ([]domain.Customer, error)

	// UpdateCustomer applies field updates. A name change additionally runs
	// rename propagation across ledger parties and notes.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, updaterUserID string) (*domain.Customer, error)

	// DeleteCustomer cascades to the customer's transactions and their linked
	// ledger entries. It returns the earliest removed transaction date (zero
	// when none) so the caller can re-propagate balances from there.
	DeleteCustomer(ctx context.Context, customerID string) (domain.CalendarDate, error)

	// Statement builds the customer's transaction statement with running balances.
	Statement(ctx context.Context, customerID string) (*dto.CustomerStatementResponse, error)
}
