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
	"github.com/shopspring/decimal"
)

// BalanceService is the propagation engine. It is the only writer of
// DailyBalance rows driven by ledger changes; everything else just asks it to
// recompute from a date.
type BalanceService struct {
	BalanceRepository portsrepo.BalanceRepositoryFacade
	LedgerRepository  portsrepo.LedgerReader
}

func NewBalanceService(balanceRepo portsrepo.BalanceRepositoryFacade, ledgerRepo portsrepo.LedgerReader) *BalanceService {
	return &BalanceService{
		BalanceRepository: balanceRepo,
		LedgerRepository:  ledgerRepo,
	}
}

// dayDeltas sums a day's ledger entries into net cash and bank movement.
// PURCHASE entries are record-only and contribute to neither.
func dayDeltas(entries []domain.DailyLedgerEntry) (cash, bank decimal.Decimal) {
	for _, e := range entries {
		switch e.Mode {
		case domain.CashIn:
			cash = cash.Add(e.Amount)
		case domain.CashOut:
			cash = cash.Sub(e.Amount)
		case domain.BankIn:
			bank = bank.Add(e.Amount)
		case domain.BankOut:
			bank = bank.Sub(e.Amount)
		}
	}
	return cash, bank
}

// PropagateBalancesForward recomputes every existing balance row with
// date >= from in ascending order. The earliest visited row keeps its stored
// opening values as the baseline; each later row's opening is the previous
// row's recomputed closing. Rows whose values did not change are not written,
// and no rows are ever created here. A failed write is logged and the walk
// continues so one bad day cannot stop later days from being fixed; the first
// error is returned at the end.
func (s *BalanceService) PropagateBalancesForward(ctx context.Context, from domain.CalendarDate) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.BalanceRepository.ListBalancesFrom(ctx, from)
	if err != nil {
		logger.Error("Failed to list balance rows for propagation", slog.String("error", err.Error()), slog.String("from", from.String()))
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	var firstErr error
	var prevClosingCash, prevClosingBank decimal.Decimal
	for i, row := range rows {
		entries, err := s.LedgerRepository.ListEntriesByDate(ctx, row.Date)
		if err != nil {
			logger.Error("Failed to list entries during propagation", slog.String("error", err.Error()), slog.String("date", row.Date.String()))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		cashDelta, bankDelta := dayDeltas(entries)

		openingCash, openingBank := row.OpeningCash, row.OpeningBank
		if i > 0 {
			openingCash, openingBank = prevClosingCash, prevClosingBank
		}
		closingCash := openingCash.Add(cashDelta)
		closingBank := openingBank.Add(bankDelta)

		changed := !openingCash.Equal(row.OpeningCash) ||
			!openingBank.Equal(row.OpeningBank) ||
			!closingCash.Equal(row.ClosingCash) ||
			!closingBank.Equal(row.ClosingBank)
		if changed {
			row.OpeningCash = openingCash
			row.OpeningBank = openingBank
			row.ClosingCash = closingCash
			row.ClosingBank = closingBank
			row.LastUpdatedAt = time.Now()
			if err := s.BalanceRepository.UpdateBalance(ctx, row); err != nil {
				logger.Error("Failed to write propagated balance", slog.String("error", err.Error()), slog.String("date", row.Date.String()))
				if firstErr == nil {
					firstErr = err
				}
			}
		}

		prevClosingCash, prevClosingBank = closingCash, closingBank
	}
	return firstErr
}

// RecalculateFromDate rebuilds balance rows from scratch for every date on or
// after startDate that has ledger entries, seeded with the given opening
// balances. Unlike forward propagation it creates missing rows, so it is the
// path used after restoring a backup. Days without entries get no row; when
// no date has entries at all, a single row is seeded at startDate so the
// baseline survives.
func (s *BalanceService) RecalculateFromDate(ctx context.Context, startDate domain.CalendarDate, openingCash, openingBank decimal.Decimal) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	dates, err := s.LedgerRepository.ListDistinctDatesFrom(ctx, startDate)
	if err != nil {
		logger.Error("Failed to list active dates for recalculation", slog.String("error", err.Error()), slog.String("start", startDate.String()))
		return err
	}
	if len(dates) == 0 {
		seed := s.buildBalanceRow(startDate, openingCash, openingBank, openingCash, openingBank)
		return s.BalanceRepository.UpsertBalanceByDate(ctx, seed)
	}

	runningCash, runningBank := openingCash, openingBank
	for _, date := range dates {
		entries, err := s.LedgerRepository.ListEntriesByDate(ctx, date)
		if err != nil {
			logger.Error("Failed to list entries during recalculation", slog.String("error", err.Error()), slog.String("date", date.String()))
			return err
		}
		cashDelta, bankDelta := dayDeltas(entries)
		closingCash := runningCash.Add(cashDelta)
		closingBank := runningBank.Add(bankDelta)

		row := s.buildBalanceRow(date, runningCash, runningBank, closingCash, closingBank)
		if err := s.BalanceRepository.UpsertBalanceByDate(ctx, row); err != nil {
			logger.Error("Failed to upsert recalculated balance", slog.String("error", err.Error()), slog.String("date", date.String()))
			return err
		}

		runningCash, runningBank = closingCash, closingBank
	}

	logger.Info("Recalculated balances", slog.String("start", startDate.String()), slog.Int("days", len(dates)))
	return nil
}

func (s *BalanceService) buildBalanceRow(date domain.CalendarDate, openCash, openBank, closeCash, closeBank decimal.Decimal) domain.DailyBalance {
	now := time.Now()
	return domain.DailyBalance{
		BalanceID:   uuid.NewString(),
		Date:        date,
		OpeningCash: openCash,
		OpeningBank: openBank,
		ClosingCash: closeCash,
		ClosingBank: closeBank,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

// SetOpeningBalance creates or overrides the row for a date with user-set
// opening values and closings computed from that day's entries. Later days
// are left stale on purpose; the caller runs forward propagation next.
func (s *BalanceService) SetOpeningBalance(ctx context.Context, req dto.SetOpeningBalanceRequest, userID string) (*domain.DailyBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.LedgerRepository.ListEntriesByDate(ctx, req.Date)
	if err != nil {
		logger.Error("Failed to list entries for opening balance", slog.String("error", err.Error()), slog.String("date", req.Date.String()))
		return nil, err
	}
	cashDelta, bankDelta := dayDeltas(entries)

	row := s.buildBalanceRow(req.Date, req.OpeningCash, req.OpeningBank, req.OpeningCash.Add(cashDelta), req.OpeningBank.Add(bankDelta))
	row.Note = req.Note
	row.CreatedBy = userID
	row.LastUpdatedBy = userID

	if err := s.BalanceRepository.UpsertBalanceByDate(ctx, row); err != nil {
		logger.Error("Failed to upsert opening balance", slog.String("error", err.Error()), slog.String("date", req.Date.String()))
		return nil, err
	}

	logger.Info("Opening balance set", slog.String("date", req.Date.String()))
	return &row, nil
}

func (s *BalanceService) GetBalanceByDate(ctx context.Context, date domain.CalendarDate) (*domain.DailyBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	row, err := s.BalanceRepository.FindBalanceByDate(ctx, date)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find balance by date", slog.String("error", err.Error()), slog.String("date", date.String()))
		}
		return nil, err
	}
	return row, nil
}

func (s *BalanceService) ListBalancesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.DailyBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	rows, err := s.BalanceRepository.ListBalancesByDateRange(ctx, from, to)
	if err != nil {
		logger.Error("Failed to list balances by range", slog.String("error", err.Error()))
		return nil, err
	}
	return rows, nil
}
