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

// ExpenseService implements the synced expense operations. An expense's
// paired ledger entry is always an OUT mode and carries the category as its
// party text.
type ExpenseService struct {
	ExpenseRepository portsrepo.ExpenseRepositoryFacade
	LedgerRepository  portsrepo.LedgerRepositoryFacade
}

func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) *ExpenseService {
	return &ExpenseService{
		ExpenseRepository: expenseRepo,
		LedgerRepository:  ledgerRepo,
	}
}

func (s *ExpenseService) SaveExpenseWithSync(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	mode, err := domain.ExpenseLedgerMode(req.Channel)
	if err != nil {
		return nil, apperrors.NewAppError(400, "invalid expense channel", errors.Join(apperrors.ErrValidation, err))
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Date:        req.Date,
		Category:    req.Category,
		Amount:      req.Amount,
		Channel:     req.Channel,
		Note:        req.Note,
		AuditFields: audit,
	}
	entry := domain.DailyLedgerEntry{
		EntryID:     uuid.NewString(),
		Date:        expense.Date,
		Mode:        mode,
		Amount:      expense.Amount,
		Party:       expense.Category,
		Note:        expense.Note,
		Source:      domain.ExpenseSource(expense.ExpenseID),
		AuditFields: audit,
	}

	if err := s.ExpenseRepository.SaveExpenseWithEntry(ctx, expense, entry); err != nil {
		logger.Error("Failed to save expense with ledger entry", slog.String("error", err.Error()), slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	logger.Info("Expense recorded with ledger entry",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("entry_id", entry.EntryID),
		slog.String("mode", string(mode)))
	return &expense, nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	expense, err := s.ExpenseRepository.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find expense by ID", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) ListExpensesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	expenses, err := s.ExpenseRepository.ListExpensesByDateRange(ctx, from, to)
	if err != nil {
		logger.Error("Failed to list expenses by range", slog.String("error", err.Error()))
		return nil, err
	}
	return expenses, nil
}

func (s *ExpenseService) ListCategories(ctx context.Context) ([]string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	categories, err := s.ExpenseRepository.ListExpenseCategories(ctx)
	if err != nil {
		logger.Error("Failed to list expense categories", slog.String("error", err.Error()))
		return nil, err
	}
	return categories, nil
}

func (s *ExpenseService) UpdateExpenseWithSync(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, domain.CalendarDate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.ExpenseRepository.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find expense for update", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		}
		return nil, domain.CalendarDate{}, err
	}

	oldDate := expense.Date
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, domain.CalendarDate{}, apperrors.ErrInvalidAmount
		}
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Channel != nil {
		expense.Channel = *req.Channel
	}
	if req.Note != nil {
		expense.Note = *req.Note
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterUserID

	mode, err := domain.ExpenseLedgerMode(expense.Channel)
	if err != nil {
		return nil, domain.CalendarDate{}, apperrors.NewAppError(400, "invalid expense channel", errors.Join(apperrors.ErrValidation, err))
	}

	entry, err := s.LedgerRepository.FindEntryBySource(ctx, domain.ExpenseSource(expenseID))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.CalendarDate{}, err
		}
		logger.Warn("No ledger entry linked to expense, updating expense only",
			slog.String("expense_id", expenseID))
		entry = nil
	}
	if entry != nil {
		entry.Date = expense.Date
		entry.Mode = mode
		entry.Amount = expense.Amount
		entry.Party = expense.Category
		entry.Note = expense.Note
		entry.LastUpdatedAt = expense.LastUpdatedAt
		entry.LastUpdatedBy = updaterUserID
	}

	if err := s.ExpenseRepository.UpdateExpenseWithEntry(ctx, *expense, entry); err != nil {
		logger.Error("Failed to update expense with ledger entry", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, domain.CalendarDate{}, err
	}

	staleFrom := oldDate
	if expense.Date.Before(staleFrom) {
		staleFrom = expense.Date
	}
	logger.Info("Expense updated with ledger entry", slog.String("expense_id", expenseID))
	return expense, staleFrom, nil
}

func (s *ExpenseService) DeleteExpenseWithSync(ctx context.Context, expenseID string) (domain.CalendarDate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.ExpenseRepository.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find expense for delete", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		}
		return domain.CalendarDate{}, err
	}

	entryID := ""
	entry, err := s.LedgerRepository.FindEntryBySource(ctx, domain.ExpenseSource(expenseID))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return domain.CalendarDate{}, err
		}
		logger.Warn("No ledger entry linked to expense, deleting expense only",
			slog.String("expense_id", expenseID))
	} else {
		entryID = entry.EntryID
	}

	if err := s.ExpenseRepository.DeleteExpenseWithEntry(ctx, expenseID, entryID); err != nil {
		logger.Error("Failed to delete expense with ledger entry", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return domain.CalendarDate{}, err
	}

	logger.Info("Expense deleted with ledger entry", slog.String("expense_id", expenseID))
	return expense.Date, nil
}
