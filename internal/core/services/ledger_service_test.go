package services

import (
	"context"
	"testing"
	"time"

	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLedgerServiceForTest() (*LedgerService, *mockLedgerRepo, *mockTransactionRepo, *mockExpenseRepo) {
	ledgerRepo := new(mockLedgerRepo)
	txnRepo := new(mockTransactionRepo)
	expenseRepo := new(mockExpenseRepo)
	return NewLedgerService(ledgerRepo, txnRepo, expenseRepo), ledgerRepo, txnRepo, expenseRepo
}

func TestCreateEntryUnlinked(t *testing.T) {
	ctx := context.Background()
	svc, ledgerRepo, _, _ := newLedgerServiceForTest()

	var saved domain.DailyLedgerEntry
	ledgerRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.DailyLedgerEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.DailyLedgerEntry)
		}).Return(nil)

	entry, err := svc.CreateEntry(ctx, dto.CreateLedgerEntryRequest{
		Date:   domain.NewCalendarDate(2024, time.May, 1),
		Mode:   domain.Purchase,
		Amount: dec(700),
		Party:  "Anand Seeds",
	}, "user-1")
	require.NoError(t, err)
	assert.True(t, saved.Source.IsZero())
	assert.Equal(t, entry.EntryID, saved.EntryID)
	assert.Equal(t, domain.Purchase, saved.Mode)
}

func TestCreateEntryRejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	svc, ledgerRepo, _, _ := newLedgerServiceForTest()

	_, err := svc.CreateEntry(ctx, dto.CreateLedgerEntryRequest{
		Date:   domain.Today(),
		Mode:   domain.CashIn,
		Amount: dec(-5),
	}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	ledgerRepo.AssertNotCalled(t, "SaveEntry", mock.Anything, mock.Anything)
}

func TestUpdateEntryUnlinkedWritesEntryOnly(t *testing.T) {
	ctx := context.Background()
	svc, ledgerRepo, txnRepo, expenseRepo := newLedgerServiceForTest()

	date := domain.NewCalendarDate(2024, time.May, 1)
	ledgerRepo.On("FindEntryByID", ctx, "entry-1").Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: date, Mode: domain.CashIn, Amount: dec(100),
	}, nil)
	ledgerRepo.On("UpdateEntry", ctx, mock.Anything).Return(nil)

	amount := dec(150)
	_, staleFrom, err := svc.UpdateEntry(ctx, "entry-1", dto.UpdateLedgerEntryRequest{Amount: &amount}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, date, staleFrom)
	ledgerRepo.AssertExpectations(t)
	txnRepo.AssertNotCalled(t, "UpdateTransactionWithEntry", mock.Anything, mock.Anything, mock.Anything)
	expenseRepo.AssertNotCalled(t, "UpdateExpenseWithEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateEntryWritesBackToTransaction(t *testing.T) {
	ctx := context.Background()
	svc, ledgerRepo, txnRepo, _ := newLedgerServiceForTest()

	date := domain.NewCalendarDate(2024, time.May, 1)
	ledgerRepo.On("FindEntryByID", ctx, "entry-1").Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: date, Mode: domain.CashOut, Amount: dec(100),
		Source: domain.CustomerSource("txn-1"),
	}, nil)
	txnRepo.On("FindTransactionByID", ctx, "txn-1").Return(&domain.CustomerTransaction{
		TransactionID: "txn-1", Direction: domain.Credit, Channel: domain.Cash,
		Amount: dec(100), Date: date,
	}, nil)

	var writtenTxn domain.CustomerTransaction
	txnRepo.On("UpdateTransactionWithEntry", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			writtenTxn = args.Get(1).(domain.CustomerTransaction)
		}).Return(nil)

	mode := domain.BankOut
	amount := dec(400)
	_, _, err := svc.UpdateEntry(ctx, "entry-1", dto.UpdateLedgerEntryRequest{
		Mode:   &mode,
		Amount: &amount,
	}, "user-1")
	require.NoError(t, err)
	// BANK_OUT inverts to a CREDIT over the bank channel.
	assert.Equal(t, domain.Credit, writtenTxn.Direction)
	assert.Equal(t, domain.Bank, writtenTxn.Channel)
	assert.True(t, writtenTxn.Amount.Equal(dec(400)))
}

func TestUpdateEntryOrphanedSourceFails(t *testing.T) {
	ctx := context.Background()
	svc, ledgerRepo, _, expenseRepo := newLedgerServiceForTest()

	ledgerRepo.On("FindEntryByID", ctx, "entry-1").Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: domain.Today(), Mode: domain.CashOut, Amount: dec(100),
		Source: domain.ExpenseSource("exp-gone"),
	}, nil)
	expenseRepo.On("FindExpenseByID", ctx, "exp-gone").Return(nil, apperrors.ErrNotFound)

	amount := dec(150)
	_, _, err := svc.UpdateEntry(ctx, "entry-1", dto.UpdateLedgerEntryRequest{Amount: &amount}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrOrphanLedgerLink)
	expenseRepo.AssertNotCalled(t, "UpdateExpenseWithEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateEntryWritesBackToExpense(t *testing.T) {
	ctx := context.Background()
	svc, ledgerRepo, _, expenseRepo := newLedgerServiceForTest()

	date := domain.NewCalendarDate(2024, time.May, 1)
	ledgerRepo.On("FindEntryByID", ctx, "entry-1").Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: date, Mode: domain.CashOut, Amount: dec(100),
		Party: "Fuel", Source: domain.ExpenseSource("exp-1"),
	}, nil)
	expenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(&domain.Expense{
		ExpenseID: "exp-1", Date: date, Category: "Fuel", Amount: dec(100), Channel: domain.Cash,
	}, nil)

	var writtenExpense domain.Expense
	expenseRepo.On("UpdateExpenseWithEntry", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			writtenExpense = args.Get(1).(domain.Expense)
		}).Return(nil)

	party := "Diesel"
	mode := domain.BankOut
	_, _, err := svc.UpdateEntry(ctx, "entry-1", dto.UpdateLedgerEntryRequest{
		Party: &party,
		Mode:  &mode,
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Diesel", writtenExpense.Category)
	assert.Equal(t, domain.Bank, writtenExpense.Channel)
}

func TestDeleteEntryLinkedToExpense(t *testing.T) {
	ctx := context.Background()
	svc, ledgerRepo, _, expenseRepo := newLedgerServiceForTest()

	date := domain.NewCalendarDate(2024, time.May, 1)
	ledgerRepo.On("FindEntryByID", ctx, "entry-1").Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: date, Source: domain.ExpenseSource("exp-1"),
	}, nil)
	expenseRepo.On("DeleteExpenseWithEntry", ctx, "exp-1", "entry-1").Return(nil)

	got, err := svc.DeleteEntry(ctx, "entry-1")
	require.NoError(t, err)
	assert.Equal(t, date, got)
	expenseRepo.AssertExpectations(t)
}

func TestDeleteEntryMissingSourceDeletesEntryAlone(t *testing.T) {
	ctx := context.Background()
	svc, ledgerRepo, txnRepo, _ := newLedgerServiceForTest()

	ledgerRepo.On("FindEntryByID", ctx, "entry-1").Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: domain.Today(), Source: domain.CustomerSource("txn-gone"),
	}, nil)
	txnRepo.On("DeleteTransactionWithEntry", ctx, "txn-gone", "entry-1").Return(apperrors.ErrNotFound)
	ledgerRepo.On("DeleteEntry", ctx, "entry-1").Return(nil)

	_, err := svc.DeleteEntry(ctx, "entry-1")
	require.NoError(t, err)
	ledgerRepo.AssertExpectations(t)
}

func TestCashbookSummary(t *testing.T) {
	ctx := context.Background()
	svc, ledgerRepo, _, _ := newLedgerServiceForTest()

	from := domain.NewCalendarDate(2024, time.May, 1)
	to := domain.NewCalendarDate(2024, time.May, 31)
	ledgerRepo.On("ListEntriesByDateRange", ctx, from, to).Return([]domain.DailyLedgerEntry{
		entry(from, domain.CashIn, 100),
		entry(from, domain.CashIn, 50),
		entry(from, domain.CashOut, 30),
		entry(to, domain.BankIn, 200),
		entry(to, domain.BankOut, 80),
		entry(to, domain.Purchase, 500),
	}, nil)

	summary, err := svc.CashbookSummary(ctx, from, to)
	require.NoError(t, err)
	assert.True(t, summary.CashIn.Equal(dec(150)))
	assert.True(t, summary.CashOut.Equal(dec(30)))
	assert.True(t, summary.BankIn.Equal(dec(200)))
	assert.True(t, summary.BankOut.Equal(dec(80)))
	assert.True(t, summary.Purchases.Equal(dec(500)))
}
