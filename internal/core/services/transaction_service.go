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

// TransactionService implements the synced customer-transaction operations.
// Every mutation keeps the transaction and its paired ledger entry consistent
// inside one database transaction; balance propagation is left to the caller.
type TransactionService struct {
	TransactionRepository portsrepo.TransactionRepositoryFacade
	LedgerRepository      portsrepo.LedgerRepositoryFacade
	CustomerRepository    portsrepo.CustomerReader
}

func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, customerRepo portsrepo.CustomerReader) *TransactionService {
	return &TransactionService{
		TransactionRepository: txnRepo,
		LedgerRepository:      ledgerRepo,
		CustomerRepository:    customerRepo,
	}
}

func (s *TransactionService) RecordTransactionWithSync(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.CustomerTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	customer, err := s.CustomerRepository.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer for transaction", slog.String("error", err.Error()), slog.String("customer_id", req.CustomerID))
		}
		return nil, err
	}

	mode, err := domain.DeriveLedgerMode(req.Direction, req.Channel)
	if err != nil {
		return nil, apperrors.NewAppError(400, "invalid direction/channel combination", errors.Join(apperrors.ErrValidation, err))
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	txn := domain.CustomerTransaction{
		TransactionID: uuid.NewString(),
		CustomerID:    req.CustomerID,
		Direction:     req.Direction,
		Amount:        req.Amount,
		Date:          req.Date,
		Channel:       req.Channel,
		Note:          req.Note,
		VoiceNotePath: req.VoiceNotePath,
		AuditFields:   audit,
	}
	source := domain.CustomerSource(txn.TransactionID)
	if req.IsSupplier {
		source = domain.SupplierSource(txn.TransactionID)
	}
	entry := domain.DailyLedgerEntry{
		EntryID:     uuid.NewString(),
		Date:        txn.Date,
		Mode:        mode,
		Amount:      txn.Amount,
		Party:       customer.Name,
		Note:        txn.Note,
		Source:      source,
		AuditFields: audit,
	}

	if err := s.TransactionRepository.SaveTransactionWithEntry(ctx, txn, entry); err != nil {
		logger.Error("Failed to save transaction with ledger entry", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	logger.Info("Transaction recorded with ledger entry",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("entry_id", entry.EntryID),
		slog.String("mode", string(mode)))
	return &txn, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.CustomerTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txn, err := s.TransactionRepository.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction by ID", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *TransactionService) ListTransactionsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.CustomerTransaction, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txns, token, err := s.TransactionRepository.ListTransactionsByCustomer(ctx, customerID, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list transactions for customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, nil, err
	}
	return txns, token, nil
}

func (s *TransactionService) UpdateTransactionWithSync(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.CustomerTransaction, domain.CalendarDate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.TransactionRepository.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction for update", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, domain.CalendarDate{}, err
	}

	oldDate := txn.Date
	if req.Direction != nil {
		txn.Direction = *req.Direction
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, domain.CalendarDate{}, apperrors.ErrInvalidAmount
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Channel != nil {
		txn.Channel = *req.Channel
	}
	if req.Note != nil {
		txn.Note = *req.Note
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = updaterUserID

	// Re-derive the mode from the edited fields. The derivation factors by
	// direction and channel, so a channel-only edit keeps the IN/OUT sense.
	mode, err := domain.DeriveLedgerMode(txn.Direction, txn.Channel)
	if err != nil {
		return nil, domain.CalendarDate{}, apperrors.NewAppError(400, "invalid direction/channel combination", errors.Join(apperrors.ErrValidation, err))
	}

	entry, err := s.findLinkedEntry(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.CalendarDate{}, err
		}
		// An orphaned transaction is data damage we repair around, not a
		// reason to block the edit.
		logger.Warn("No ledger entry linked to transaction, updating transaction only",
			slog.String("transaction_id", transactionID))
		entry = nil
	}
	if entry != nil {
		entry.Date = txn.Date
		entry.Mode = mode
		entry.Amount = txn.Amount
		entry.Note = txn.Note
		entry.LastUpdatedAt = txn.LastUpdatedAt
		entry.LastUpdatedBy = updaterUserID
	}

	if err := s.TransactionRepository.UpdateTransactionWithEntry(ctx, *txn, entry); err != nil {
		logger.Error("Failed to update transaction with ledger entry", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, domain.CalendarDate{}, err
	}

	staleFrom := oldDate
	if txn.Date.Before(staleFrom) {
		staleFrom = txn.Date
	}
	logger.Info("Transaction updated with ledger entry", slog.String("transaction_id", transactionID))
	return txn, staleFrom, nil
}

func (s *TransactionService) DeleteTransactionWithSync(ctx context.Context, transactionID string) (domain.CalendarDate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.TransactionRepository.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction for delete", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return domain.CalendarDate{}, err
	}

	entryID := ""
	entry, err := s.findLinkedEntry(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return domain.CalendarDate{}, err
		}
		logger.Warn("No ledger entry linked to transaction, deleting transaction only",
			slog.String("transaction_id", transactionID))
	} else {
		entryID = entry.EntryID
	}

	if err := s.TransactionRepository.DeleteTransactionWithEntry(ctx, transactionID, entryID); err != nil {
		logger.Error("Failed to delete transaction with ledger entry", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return domain.CalendarDate{}, err
	}

	logger.Info("Transaction deleted with ledger entry", slog.String("transaction_id", transactionID))
	return txn.Date, nil
}

// findLinkedEntry resolves the ledger entry paired with a transaction. The
// link was tagged CUSTOMER or SUPPLIER at creation, so both tags are tried.
func (s *TransactionService) findLinkedEntry(ctx context.Context, transactionID string) (*domain.DailyLedgerEntry, error) {
	entry, err := s.LedgerRepository.FindEntryBySource(ctx, domain.CustomerSource(transactionID))
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return s.LedgerRepository.FindEntryBySource(ctx, domain.SupplierSource(transactionID))
}
