package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/khatasync/khata_backend/internal/middleware"
)

// LedgerService implements operations on the daily cashbook. Editing or
// deleting a linked entry writes back through the source link so the
// originating transaction or expense never drifts from its entry.
type LedgerService struct {
	LedgerRepository      portsrepo.LedgerRepositoryFacade
	TransactionRepository portsrepo.TransactionRepositoryFacade
	ExpenseRepository     portsrepo.ExpenseRepositoryFacade
}

func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, expenseRepo portsrepo.ExpenseRepositoryFacade) *LedgerService {
	return &LedgerService{
		LedgerRepository:      ledgerRepo,
		TransactionRepository: txnRepo,
		ExpenseRepository:     expenseRepo,
	}
}

func (s *LedgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, creatorUserID string) (*domain.DailyLedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	now := time.Now()
	entry := domain.DailyLedgerEntry{
		EntryID: uuid.NewString(),
		Date:    req.Date,
		Mode:    req.Mode,
		Amount:  req.Amount,
		Party:   req.Party,
		Note:    req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.LedgerRepository.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	logger.Info("Ledger entry created", slog.String("entry_id", entry.EntryID), slog.String("mode", string(entry.Mode)))
	return &entry, nil
}

func (s *LedgerService) GetEntry(ctx context.Context, entryID string) (*domain.DailyLedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	entry, err := s.LedgerRepository.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find ledger entry by ID", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *LedgerService) ListEntriesByDate(ctx context.Context, date domain.CalendarDate) ([]domain.DailyLedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	entries, err := s.LedgerRepository.ListEntriesByDate(ctx, date)
	if err != nil {
		logger.Error("Failed to list ledger entries by date", slog.String("error", err.Error()), slog.String("date", date.String()))
		return nil, err
	}
	return entries, nil
}

func (s *LedgerService) ListEntriesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.DailyLedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	entries, err := s.LedgerRepository.ListEntriesByDateRange(ctx, from, to)
	if err != nil {
		logger.Error("Failed to list ledger entries by range", slog.String("error", err.Error()))
		return nil, err
	}
	return entries, nil
}

func (s *LedgerService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateLedgerEntryRequest, updaterUserID string) (*domain.DailyLedgerEntry, domain.CalendarDate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.LedgerRepository.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find ledger entry for update", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, domain.CalendarDate{}, err
	}

	oldDate := entry.Date
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Mode != nil {
		entry.Mode = *req.Mode
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, domain.CalendarDate{}, apperrors.ErrInvalidAmount
		}
		entry.Amount = *req.Amount
	}
	if req.Party != nil {
		entry.Party = *req.Party
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = updaterUserID

	if entry.Source.IsZero() {
		if err := s.LedgerRepository.UpdateEntry(ctx, *entry); err != nil {
			logger.Error("Failed to update ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			return nil, domain.CalendarDate{}, err
		}
	} else if err := s.writeBackThroughSource(ctx, entry, updaterUserID); err != nil {
		return nil, domain.CalendarDate{}, err
	}

	staleFrom := oldDate
	if entry.Date.Before(staleFrom) {
		staleFrom = entry.Date
	}
	logger.Info("Ledger entry updated", slog.String("entry_id", entryID))
	return entry, staleFrom, nil
}

// writeBackThroughSource pushes the edited entry's fields into its source
// record so both change atomically. A link pointing at a record that no
// longer exists is surfaced as ErrOrphanLedgerLink rather than silently
// diverging the pair.
func (s *LedgerService) writeBackThroughSource(ctx context.Context, entry *domain.DailyLedgerEntry, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	switch entry.Source.Type {
	case domain.SourceCustomer, domain.SourceSupplier:
		txn, err := s.TransactionRepository.FindTransactionByID(ctx, entry.Source.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Ledger entry links to a missing transaction",
					slog.String("entry_id", entry.EntryID), slog.String("source_id", entry.Source.ID))
				return apperrors.ErrOrphanLedgerLink
			}
			return err
		}
		direction, channel, err := transactionFieldsForMode(entry.Mode)
		if err != nil {
			return apperrors.NewAppError(400, "ledger mode not valid for a customer transaction", errors.Join(apperrors.ErrValidation, err))
		}
		txn.Direction = direction
		txn.Channel = channel
		txn.Amount = entry.Amount
		txn.Date = entry.Date
		txn.Note = entry.Note
		txn.LastUpdatedAt = entry.LastUpdatedAt
		txn.LastUpdatedBy = updaterUserID
		if err := s.TransactionRepository.UpdateTransactionWithEntry(ctx, *txn, entry); err != nil {
			logger.Error("Failed to write entry edit back to transaction", slog.String("error", err.Error()), slog.String("entry_id", entry.EntryID))
			return err
		}
		return nil

	case domain.SourceExpense:
		expense, err := s.ExpenseRepository.FindExpenseByID(ctx, entry.Source.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Ledger entry links to a missing expense",
					slog.String("entry_id", entry.EntryID), slog.String("source_id", entry.Source.ID))
				return apperrors.ErrOrphanLedgerLink
			}
			return err
		}
		channel, err := expenseChannelForMode(entry.Mode)
		if err != nil {
			return apperrors.NewAppError(400, "ledger mode not valid for an expense", errors.Join(apperrors.ErrValidation, err))
		}
		expense.Channel = channel
		expense.Amount = entry.Amount
		expense.Date = entry.Date
		expense.Category = entry.Party
		expense.Note = entry.Note
		expense.LastUpdatedAt = entry.LastUpdatedAt
		expense.LastUpdatedBy = updaterUserID
		if err := s.ExpenseRepository.UpdateExpenseWithEntry(ctx, *expense, entry); err != nil {
			logger.Error("Failed to write entry edit back to expense", slog.String("error", err.Error()), slog.String("entry_id", entry.EntryID))
			return err
		}
		return nil
	}
	return apperrors.NewAppError(500, fmt.Sprintf("unknown source type %q on entry %s", entry.Source.Type, entry.EntryID), nil)
}

// transactionFieldsForMode inverts the mode derivation for customer-linked
// entries. PURCHASE has no transaction equivalent.
func transactionFieldsForMode(mode domain.LedgerMode) (domain.Direction, domain.PaymentChannel, error) {
	switch mode {
	case domain.CashIn:
		return domain.Debit, domain.Cash, nil
	case domain.BankIn:
		return domain.Debit, domain.Bank, nil
	case domain.CashOut:
		return domain.Credit, domain.Cash, nil
	case domain.BankOut:
		return domain.Credit, domain.Bank, nil
	}
	return "", "", fmt.Errorf("no transaction fields for mode %q", mode)
}

// expenseChannelForMode inverts the expense mode derivation. Expense entries
// only ever take money out.
func expenseChannelForMode(mode domain.LedgerMode) (domain.PaymentChannel, error) {
	switch mode {
	case domain.CashOut:
		return domain.Cash, nil
	case domain.BankOut:
		return domain.Bank, nil
	}
	return "", fmt.Errorf("no expense channel for mode %q", mode)
}

func (s *LedgerService) DeleteEntry(ctx context.Context, entryID string) (domain.CalendarDate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.LedgerRepository.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find ledger entry for delete", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return domain.CalendarDate{}, err
	}

	switch entry.Source.Type {
	case domain.SourceCustomer, domain.SourceSupplier:
		err = s.TransactionRepository.DeleteTransactionWithEntry(ctx, entry.Source.ID, entryID)
	case domain.SourceExpense:
		err = s.ExpenseRepository.DeleteExpenseWithEntry(ctx, entry.Source.ID, entryID)
	default:
		err = s.LedgerRepository.DeleteEntry(ctx, entryID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// The source record is already gone; remove the dangling entry.
			logger.Warn("Ledger entry links to a missing source, deleting entry alone",
				slog.String("entry_id", entryID))
			err = s.LedgerRepository.DeleteEntry(ctx, entryID)
		}
		if err != nil {
			logger.Error("Failed to delete ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			return domain.CalendarDate{}, err
		}
	}

	logger.Info("Ledger entry deleted", slog.String("entry_id", entryID))
	return entry.Date, nil
}

func (s *LedgerService) CashbookSummary(ctx context.Context, from, to domain.CalendarDate) (*dto.CashbookSummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.LedgerRepository.ListEntriesByDateRange(ctx, from, to)
	if err != nil {
		logger.Error("Failed to list ledger entries for summary", slog.String("error", err.Error()))
		return nil, err
	}

	summary := dto.CashbookSummaryResponse{From: from, To: to}
	for _, e := range entries {
		switch e.Mode {
		case domain.CashIn:
			summary.CashIn = summary.CashIn.Add(e.Amount)
		case domain.CashOut:
			summary.CashOut = summary.CashOut.Add(e.Amount)
		case domain.BankIn:
			summary.BankIn = summary.BankIn.Add(e.Amount)
		case domain.BankOut:
			summary.BankOut = summary.BankOut.Add(e.Amount)
		case domain.Purchase:
			summary.Purchases = summary.Purchases.Add(e.Amount)
		}
	}
	return &summary, nil
}
