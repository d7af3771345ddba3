package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/khatasync/khata_backend/internal/middleware"
)

const statementPageSize = 200

// CustomerService implements customer operations, including the rename
// propagation that keeps ledger party text and notes consistent with the
// customer's current display name.
type CustomerService struct {
	CustomerRepository    portsrepo.CustomerRepositoryFacade
	TransactionRepository portsrepo.TransactionReader
}

func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, txnRepo portsrepo.TransactionReader) *CustomerService {
	return &CustomerService{
		CustomerRepository:    customerRepo,
		TransactionRepository: txnRepo,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	customer := domain.Customer{
		CustomerID:     uuid.NewString(),
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		ContactType:    req.ContactType,
		OpeningBalance: req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.CustomerRepository.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()), slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	customer, err := s.CustomerRepository.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer by ID", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, contactType *domain.ContactType) ([]domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	customers, err := s.CustomerRepository.ListCustomers(ctx, contactType)
	if err != nil {
		logger.Error("Failed to list customers", slog.String("error", err.Error()))
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, updaterUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.CustomerRepository.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer for update", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}

	oldName := customer.Name
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.ContactType != nil {
		customer.ContactType = *req.ContactType
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = updaterUserID

	if err := s.CustomerRepository.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, err
	}

	if customer.Name != oldName {
		if err := s.CustomerRepository.ApplyRename(ctx, customerID, oldName, customer.Name); err != nil {
			logger.Error("Failed to propagate customer rename", slog.String("error", err.Error()), slog.String("customer_id", customerID))
			return nil, err
		}
		logger.Info("Customer rename propagated",
			slog.String("customer_id", customerID),
			slog.String("old_name", oldName),
			slog.String("new_name", customer.Name))
	}

	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) (domain.CalendarDate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	earliest, err := s.CustomerRepository.DeleteCustomerCascade(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return domain.CalendarDate{}, err
	}

	logger.Info("Customer deleted with transactions and ledger entries", slog.String("customer_id", customerID))
	return earliest, nil
}

// Statement builds the full khata statement with running balances. CREDIT
// (money given to the customer) raises what they owe, DEBIT lowers it.
func (s *CustomerService) Statement(ctx context.Context, customerID string) (*dto.CustomerStatementResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.CustomerRepository.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer for statement", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}

	// The repository pages newest first; collect everything and walk it
	// backwards so the running balance starts from the opening balance.
	var all []domain.CustomerTransaction
	var token *string
	for {
		page, next, err := s.TransactionRepository.ListTransactionsByCustomer(ctx, customerID, statementPageSize, token)
		if err != nil {
			logger.Error("Failed to list transactions for statement", slog.String("error", err.Error()), slog.String("customer_id", customerID))
			return nil, err
		}
		all = append(all, page...)
		if next == nil {
			break
		}
		token = next
	}

	statement := dto.CustomerStatementResponse{
		CustomerID:     customer.CustomerID,
		CustomerName:   customer.Name,
		OpeningBalance: customer.OpeningBalance,
		Lines:          make([]dto.StatementLine, 0, len(all)),
	}
	running := customer.OpeningBalance
	for i := len(all) - 1; i >= 0; i-- {
		txn := all[i]
		if txn.Direction == domain.Credit {
			running = running.Add(txn.Amount)
		} else {
			running = running.Sub(txn.Amount)
		}
		statement.Lines = append(statement.Lines, dto.StatementLine{
			TransactionID: txn.TransactionID,
			Date:          txn.Date,
			Direction:     txn.Direction,
			Amount:        txn.Amount,
			Note:          txn.Note,
			Balance:       running,
		})
	}
	statement.ClosingBalance = running
	return &statement, nil
}
