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

func newExpenseServiceForTest() (*ExpenseService, *mockExpenseRepo, *mockLedgerRepo) {
	expenseRepo := new(mockExpenseRepo)
	ledgerRepo := new(mockLedgerRepo)
	return NewExpenseService(expenseRepo, ledgerRepo), expenseRepo, ledgerRepo
}

func TestSaveExpenseWithSyncPairsEntry(t *testing.T) {
	tests := []struct {
		name     string
		channel  domain.PaymentChannel
		wantMode domain.LedgerMode
	}{
		{"cash expense", domain.Cash, domain.CashOut},
		{"bank expense", domain.Bank, domain.BankOut},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, expenseRepo, _ := newExpenseServiceForTest()

			var savedEntry domain.DailyLedgerEntry
			expenseRepo.On("SaveExpenseWithEntry", ctx, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					savedEntry = args.Get(2).(domain.DailyLedgerEntry)
				}).Return(nil)

			date := domain.NewCalendarDate(2024, time.July, 3)
			expense, err := svc.SaveExpenseWithSync(ctx, dto.CreateExpenseRequest{
				Category: "Fuel",
				Amount:   dec(200),
				Date:     date,
				Channel:  tt.channel,
			}, "user-1")
			require.NoError(t, err)

			assert.Equal(t, tt.wantMode, savedEntry.Mode)
			assert.Equal(t, "Fuel", savedEntry.Party)
			assert.Equal(t, domain.SourceExpense, savedEntry.Source.Type)
			assert.Equal(t, expense.ExpenseID, savedEntry.Source.ID)
		})
	}
}

func TestSaveExpenseWithSyncRejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	svc, expenseRepo, _ := newExpenseServiceForTest()

	_, err := svc.SaveExpenseWithSync(ctx, dto.CreateExpenseRequest{
		Category: "Fuel",
		Amount:   dec(-1),
		Date:     domain.Today(),
		Channel:  domain.Cash,
	}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	expenseRepo.AssertNotCalled(t, "SaveExpenseWithEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateExpenseWithSyncUpdatesLinkedEntry(t *testing.T) {
	ctx := context.Background()
	svc, expenseRepo, ledgerRepo := newExpenseServiceForTest()

	date := domain.NewCalendarDate(2024, time.July, 3)
	expenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(&domain.Expense{
		ExpenseID: "exp-1", Date: date, Category: "Fuel", Amount: dec(200), Channel: domain.Cash,
	}, nil)
	ledgerRepo.On("FindEntryBySource", ctx, domain.ExpenseSource("exp-1")).Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: date, Mode: domain.CashOut, Amount: dec(200),
		Party: "Fuel", Source: domain.ExpenseSource("exp-1"),
	}, nil)

	var updatedEntry *domain.DailyLedgerEntry
	expenseRepo.On("UpdateExpenseWithEntry", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updatedEntry = args.Get(2).(*domain.DailyLedgerEntry)
		}).Return(nil)

	bank := domain.Bank
	category := "Diesel"
	_, staleFrom, err := svc.UpdateExpenseWithSync(ctx, "exp-1", dto.UpdateExpenseRequest{
		Channel:  &bank,
		Category: &category,
	}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, updatedEntry)
	assert.Equal(t, domain.BankOut, updatedEntry.Mode)
	assert.Equal(t, "Diesel", updatedEntry.Party)
	assert.Equal(t, date, staleFrom)
}

func TestUpdateExpenseWithSyncStaleFromEarlierDate(t *testing.T) {
	ctx := context.Background()
	svc, expenseRepo, ledgerRepo := newExpenseServiceForTest()

	oldDate := domain.NewCalendarDate(2024, time.July, 10)
	newDate := domain.NewCalendarDate(2024, time.July, 4)
	expenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(&domain.Expense{
		ExpenseID: "exp-1", Date: oldDate, Category: "Fuel", Amount: dec(200), Channel: domain.Cash,
	}, nil)
	ledgerRepo.On("FindEntryBySource", ctx, domain.ExpenseSource("exp-1")).Return(nil, apperrors.ErrNotFound)
	expenseRepo.On("UpdateExpenseWithEntry", ctx, mock.Anything, (*domain.DailyLedgerEntry)(nil)).Return(nil)

	_, staleFrom, err := svc.UpdateExpenseWithSync(ctx, "exp-1", dto.UpdateExpenseRequest{Date: &newDate}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, newDate, staleFrom)
	expenseRepo.AssertExpectations(t)
}

func TestDeleteExpenseWithSync(t *testing.T) {
	ctx := context.Background()
	svc, expenseRepo, ledgerRepo := newExpenseServiceForTest()

	date := domain.NewCalendarDate(2024, time.July, 3)
	expenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(&domain.Expense{
		ExpenseID: "exp-1", Date: date,
	}, nil)
	ledgerRepo.On("FindEntryBySource", ctx, domain.ExpenseSource("exp-1")).Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: date, Source: domain.ExpenseSource("exp-1"),
	}, nil)
	expenseRepo.On("DeleteExpenseWithEntry", ctx, "exp-1", "entry-1").Return(nil)

	got, err := svc.DeleteExpenseWithSync(ctx, "exp-1")
	require.NoError(t, err)
	assert.Equal(t, date, got)
	expenseRepo.AssertExpectations(t)
}
