package services

import (
	"context"
	"testing"
	"time"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func balanceRow(date domain.CalendarDate, openCash, openBank, closeCash, closeBank int64) domain.DailyBalance {
	return domain.DailyBalance{
		BalanceID:   "bal-" + date.String(),
		Date:        date,
		OpeningCash: dec(openCash),
		OpeningBank: dec(openBank),
		ClosingCash: dec(closeCash),
		ClosingBank: dec(closeBank),
	}
}

func entry(date domain.CalendarDate, mode domain.LedgerMode, amount int64) domain.DailyLedgerEntry {
	return domain.DailyLedgerEntry{
		EntryID: "entry-" + string(mode) + date.String(),
		Date:    date,
		Mode:    mode,
		Amount:  dec(amount),
	}
}

func TestPropagateBalancesForwardCarriesClosings(t *testing.T) {
	ctx := context.Background()
	d1 := domain.NewCalendarDate(2024, time.March, 1)
	d2 := domain.NewCalendarDate(2024, time.March, 3)

	balanceRepo := new(mockBalanceRepo)
	ledgerRepo := new(mockLedgerRepo)
	svc := NewBalanceService(balanceRepo, ledgerRepo)

	// Day 1 holds the baseline; both closings are stale.
	balanceRepo.On("ListBalancesFrom", ctx, d1).Return([]domain.DailyBalance{
		balanceRow(d1, 100, 50, 0, 0),
		balanceRow(d2, 0, 0, 0, 0),
	}, nil)
	ledgerRepo.On("ListEntriesByDate", ctx, d1).Return([]domain.DailyLedgerEntry{
		entry(d1, domain.CashIn, 40),
		entry(d1, domain.BankOut, 10),
	}, nil)
	ledgerRepo.On("ListEntriesByDate", ctx, d2).Return([]domain.DailyLedgerEntry{
		entry(d2, domain.CashOut, 30),
		entry(d2, domain.Purchase, 9999), // record-only, must not move anything
	}, nil)

	var written []domain.DailyBalance
	balanceRepo.On("UpdateBalance", ctx, mock.AnythingOfType("domain.DailyBalance")).
		Run(func(args mock.Arguments) {
			written = append(written, args.Get(1).(domain.DailyBalance))
		}).Return(nil)

	err := svc.PropagateBalancesForward(ctx, d1)
	require.NoError(t, err)
	require.Len(t, written, 2)

	// Day 1 keeps its stored openings and gets recomputed closings.
	assert.True(t, written[0].OpeningCash.Equal(dec(100)))
	assert.True(t, written[0].OpeningBank.Equal(dec(50)))
	assert.True(t, written[0].ClosingCash.Equal(dec(140)))
	assert.True(t, written[0].ClosingBank.Equal(dec(40)))

	// Day 2 opens at day 1's closing; the PURCHASE entry contributed nothing.
	assert.True(t, written[1].OpeningCash.Equal(dec(140)))
	assert.True(t, written[1].OpeningBank.Equal(dec(40)))
	assert.True(t, written[1].ClosingCash.Equal(dec(110)))
	assert.True(t, written[1].ClosingBank.Equal(dec(40)))
}

func TestPropagateBalancesForwardSkipsUnchangedRows(t *testing.T) {
	ctx := context.Background()
	d1 := domain.NewCalendarDate(2024, time.March, 1)

	balanceRepo := new(mockBalanceRepo)
	ledgerRepo := new(mockLedgerRepo)
	svc := NewBalanceService(balanceRepo, ledgerRepo)

	// Row already consistent with its entries.
	balanceRepo.On("ListBalancesFrom", ctx, d1).Return([]domain.DailyBalance{
		balanceRow(d1, 100, 0, 150, 0),
	}, nil)
	ledgerRepo.On("ListEntriesByDate", ctx, d1).Return([]domain.DailyLedgerEntry{
		entry(d1, domain.CashIn, 50),
	}, nil)

	err := svc.PropagateBalancesForward(ctx, d1)
	require.NoError(t, err)
	balanceRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
}

func TestPropagateBalancesForwardNoRows(t *testing.T) {
	ctx := context.Background()
	d1 := domain.NewCalendarDate(2024, time.March, 1)

	balanceRepo := new(mockBalanceRepo)
	ledgerRepo := new(mockLedgerRepo)
	svc := NewBalanceService(balanceRepo, ledgerRepo)

	balanceRepo.On("ListBalancesFrom", ctx, d1).Return([]domain.DailyBalance{}, nil)

	err := svc.PropagateBalancesForward(ctx, d1)
	require.NoError(t, err)
	balanceRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
	ledgerRepo.AssertNotCalled(t, "ListEntriesByDate", mock.Anything, mock.Anything)
}

func TestPropagateBalancesForwardContinuesPastWriteFailure(t *testing.T) {
	ctx := context.Background()
	d1 := domain.NewCalendarDate(2024, time.March, 1)
	d2 := domain.NewCalendarDate(2024, time.March, 2)

	balanceRepo := new(mockBalanceRepo)
	ledgerRepo := new(mockLedgerRepo)
	svc := NewBalanceService(balanceRepo, ledgerRepo)

	balanceRepo.On("ListBalancesFrom", ctx, d1).Return([]domain.DailyBalance{
		balanceRow(d1, 100, 0, 0, 0),
		balanceRow(d2, 0, 0, 0, 0),
	}, nil)
	ledgerRepo.On("ListEntriesByDate", ctx, d1).Return([]domain.DailyLedgerEntry{
		entry(d1, domain.CashIn, 10),
	}, nil)
	ledgerRepo.On("ListEntriesByDate", ctx, d2).Return([]domain.DailyLedgerEntry{}, nil)

	writeErr := assert.AnError
	balanceRepo.On("UpdateBalance", ctx, mock.MatchedBy(func(b domain.DailyBalance) bool {
		return b.Date == d1
	})).Return(writeErr)
	balanceRepo.On("UpdateBalance", ctx, mock.MatchedBy(func(b domain.DailyBalance) bool {
		return b.Date == d2
	})).Return(nil)

	err := svc.PropagateBalancesForward(ctx, d1)
	assert.ErrorIs(t, err, writeErr)
	// The later day was still fixed from the recomputed closing.
	balanceRepo.AssertCalled(t, "UpdateBalance", ctx, mock.MatchedBy(func(b domain.DailyBalance) bool {
		return b.Date == d2 && b.OpeningCash.Equal(dec(110)) && b.ClosingCash.Equal(dec(110))
	}))
}

func TestRecalculateFromDateFillsGaps(t *testing.T) {
	ctx := context.Background()
	start := domain.NewCalendarDate(2024, time.January, 1)
	d1 := domain.NewCalendarDate(2024, time.January, 2)
	d2 := domain.NewCalendarDate(2024, time.January, 9) // gap in between stays row-less

	balanceRepo := new(mockBalanceRepo)
	ledgerRepo := new(mockLedgerRepo)
	svc := NewBalanceService(balanceRepo, ledgerRepo)

	ledgerRepo.On("ListDistinctDatesFrom", ctx, start).Return([]domain.CalendarDate{d1, d2}, nil)
	ledgerRepo.On("ListEntriesByDate", ctx, d1).Return([]domain.DailyLedgerEntry{
		entry(d1, domain.BankIn, 500),
	}, nil)
	ledgerRepo.On("ListEntriesByDate", ctx, d2).Return([]domain.DailyLedgerEntry{
		entry(d2, domain.BankOut, 200),
		entry(d2, domain.CashIn, 75),
	}, nil)

	var upserted []domain.DailyBalance
	balanceRepo.On("UpsertBalanceByDate", ctx, mock.AnythingOfType("domain.DailyBalance")).
		Run(func(args mock.Arguments) {
			upserted = append(upserted, args.Get(1).(domain.DailyBalance))
		}).Return(nil)

	err := svc.RecalculateFromDate(ctx, start, dec(1000), dec(0))
	require.NoError(t, err)
	require.Len(t, upserted, 2)

	assert.Equal(t, d1, upserted[0].Date)
	assert.True(t, upserted[0].OpeningCash.Equal(dec(1000)))
	assert.True(t, upserted[0].ClosingBank.Equal(dec(500)))

	assert.Equal(t, d2, upserted[1].Date)
	assert.True(t, upserted[1].OpeningBank.Equal(dec(500)))
	assert.True(t, upserted[1].ClosingBank.Equal(dec(300)))
	assert.True(t, upserted[1].ClosingCash.Equal(dec(1075)))
}

func TestRecalculateFromDateSeedsWhenNoEntries(t *testing.T) {
	ctx := context.Background()
	start := domain.NewCalendarDate(2024, time.January, 1)

	balanceRepo := new(mockBalanceRepo)
	ledgerRepo := new(mockLedgerRepo)
	svc := NewBalanceService(balanceRepo, ledgerRepo)

	ledgerRepo.On("ListDistinctDatesFrom", ctx, start).Return([]domain.CalendarDate{}, nil)
	balanceRepo.On("UpsertBalanceByDate", ctx, mock.MatchedBy(func(b domain.DailyBalance) bool {
		return b.Date == start &&
			b.OpeningCash.Equal(dec(250)) && b.ClosingCash.Equal(dec(250)) &&
			b.OpeningBank.Equal(dec(80)) && b.ClosingBank.Equal(dec(80))
	})).Return(nil)

	err := svc.RecalculateFromDate(ctx, start, dec(250), dec(80))
	require.NoError(t, err)
	balanceRepo.AssertExpectations(t)
}
