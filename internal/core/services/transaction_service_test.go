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

func newTransactionServiceForTest() (*TransactionService, *mockTransactionRepo, *mockLedgerRepo, *mockCustomerRepo) {
	txnRepo := new(mockTransactionRepo)
	ledgerRepo := new(mockLedgerRepo)
	customerRepo := new(mockCustomerRepo)
	return NewTransactionService(txnRepo, ledgerRepo, customerRepo), txnRepo, ledgerRepo, customerRepo
}

func TestRecordTransactionWithSyncPairsEntry(t *testing.T) {
	tests := []struct {
		name      string
		direction domain.Direction
		channel   domain.PaymentChannel
		wantMode  domain.LedgerMode
	}{
		{"debit cash", domain.Debit, domain.Cash, domain.CashIn},
		{"debit bank", domain.Debit, domain.Bank, domain.BankIn},
		{"credit cash", domain.Credit, domain.Cash, domain.CashOut},
		{"credit bank", domain.Credit, domain.Bank, domain.BankOut},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, txnRepo, _, customerRepo := newTransactionServiceForTest()

			customerRepo.On("FindCustomerByID", ctx, "cust-1").Return(&domain.Customer{
				CustomerID: "cust-1",
				Name:       "Ramesh",
			}, nil)

			var savedTxn domain.CustomerTransaction
			var savedEntry domain.DailyLedgerEntry
			txnRepo.On("SaveTransactionWithEntry", ctx, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					savedTxn = args.Get(1).(domain.CustomerTransaction)
					savedEntry = args.Get(2).(domain.DailyLedgerEntry)
				}).Return(nil)

			date := domain.NewCalendarDate(2024, time.June, 5)
			txn, err := svc.RecordTransactionWithSync(ctx, dto.CreateTransactionRequest{
				CustomerID: "cust-1",
				Direction:  tt.direction,
				Amount:     dec(500),
				Date:       date,
				Channel:    tt.channel,
				Note:       "seed stock",
			}, "user-1")
			require.NoError(t, err)

			assert.Equal(t, savedTxn.TransactionID, txn.TransactionID)
			assert.Equal(t, tt.wantMode, savedEntry.Mode)
			assert.Equal(t, "Ramesh", savedEntry.Party)
			assert.Equal(t, date, savedEntry.Date)
			assert.True(t, savedEntry.Amount.Equal(dec(500)))
			assert.Equal(t, domain.SourceCustomer, savedEntry.Source.Type)
			assert.Equal(t, txn.TransactionID, savedEntry.Source.ID)
		})
	}
}

func TestRecordTransactionWithSyncSupplierTag(t *testing.T) {
	ctx := context.Background()
	svc, txnRepo, _, customerRepo := newTransactionServiceForTest()

	customerRepo.On("FindCustomerByID", ctx, "cust-1").Return(&domain.Customer{
		CustomerID: "cust-1", Name: "Mohan Traders",
	}, nil)

	var savedEntry domain.DailyLedgerEntry
	txnRepo.On("SaveTransactionWithEntry", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(2).(domain.DailyLedgerEntry)
		}).Return(nil)

	_, err := svc.RecordTransactionWithSync(ctx, dto.CreateTransactionRequest{
		CustomerID: "cust-1",
		Direction:  domain.Credit,
		Amount:     dec(900),
		Date:       domain.NewCalendarDate(2024, time.June, 5),
		Channel:    domain.Cash,
		IsSupplier: true,
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceSupplier, savedEntry.Source.Type)
}

func TestRecordTransactionWithSyncRejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	svc, txnRepo, _, _ := newTransactionServiceForTest()

	_, err := svc.RecordTransactionWithSync(ctx, dto.CreateTransactionRequest{
		CustomerID: "cust-1",
		Direction:  domain.Debit,
		Amount:     dec(0),
		Date:       domain.Today(),
		Channel:    domain.Cash,
	}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	txnRepo.AssertNotCalled(t, "SaveTransactionWithEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordTransactionWithSyncUnknownCustomer(t *testing.T) {
	ctx := context.Background()
	svc, _, _, customerRepo := newTransactionServiceForTest()

	customerRepo.On("FindCustomerByID", ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.RecordTransactionWithSync(ctx, dto.CreateTransactionRequest{
		CustomerID: "missing",
		Direction:  domain.Debit,
		Amount:     dec(10),
		Date:       domain.Today(),
		Channel:    domain.Cash,
	}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateTransactionChannelOnlyEditKeepsSense(t *testing.T) {
	ctx := context.Background()
	svc, txnRepo, ledgerRepo, _ := newTransactionServiceForTest()

	date := domain.NewCalendarDate(2024, time.June, 5)
	txnRepo.On("FindTransactionByID", ctx, "txn-1").Return(&domain.CustomerTransaction{
		TransactionID: "txn-1",
		CustomerID:    "cust-1",
		Direction:     domain.Debit,
		Amount:        dec(500),
		Date:          date,
		Channel:       domain.Cash,
	}, nil)
	ledgerRepo.On("FindEntryBySource", ctx, domain.CustomerSource("txn-1")).Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1",
		Date:    date,
		Mode:    domain.CashIn,
		Amount:  dec(500),
		Source:  domain.CustomerSource("txn-1"),
	}, nil)

	var updatedEntry *domain.DailyLedgerEntry
	txnRepo.On("UpdateTransactionWithEntry", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updatedEntry = args.Get(2).(*domain.DailyLedgerEntry)
		}).Return(nil)

	bank := domain.Bank
	_, staleFrom, err := svc.UpdateTransactionWithSync(ctx, "txn-1", dto.UpdateTransactionRequest{
		Channel: &bank,
	}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, updatedEntry)
	// Moving DEBIT money from cash to the bank must stay an inflow.
	assert.Equal(t, domain.BankIn, updatedEntry.Mode)
	assert.Equal(t, date, staleFrom)
}

func TestUpdateTransactionStaleFromIsEarlierDate(t *testing.T) {
	ctx := context.Background()
	svc, txnRepo, ledgerRepo, _ := newTransactionServiceForTest()

	oldDate := domain.NewCalendarDate(2024, time.June, 10)
	newDate := domain.NewCalendarDate(2024, time.June, 2)
	txnRepo.On("FindTransactionByID", ctx, "txn-1").Return(&domain.CustomerTransaction{
		TransactionID: "txn-1",
		Direction:     domain.Debit,
		Amount:        dec(100),
		Date:          oldDate,
		Channel:       domain.Cash,
	}, nil)
	ledgerRepo.On("FindEntryBySource", ctx, domain.CustomerSource("txn-1")).Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: oldDate, Mode: domain.CashIn, Amount: dec(100),
		Source: domain.CustomerSource("txn-1"),
	}, nil)
	txnRepo.On("UpdateTransactionWithEntry", ctx, mock.Anything, mock.Anything).Return(nil)

	_, staleFrom, err := svc.UpdateTransactionWithSync(ctx, "txn-1", dto.UpdateTransactionRequest{
		Date: &newDate,
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, newDate, staleFrom)
}

func TestUpdateTransactionToleratesMissingEntry(t *testing.T) {
	ctx := context.Background()
	svc, txnRepo, ledgerRepo, _ := newTransactionServiceForTest()

	txnRepo.On("FindTransactionByID", ctx, "txn-1").Return(&domain.CustomerTransaction{
		TransactionID: "txn-1",
		Direction:     domain.Debit,
		Amount:        dec(100),
		Date:          domain.NewCalendarDate(2024, time.June, 10),
		Channel:       domain.Cash,
	}, nil)
	// Both link tags miss: the transaction is orphaned.
	ledgerRepo.On("FindEntryBySource", ctx, domain.CustomerSource("txn-1")).Return(nil, apperrors.ErrNotFound)
	ledgerRepo.On("FindEntryBySource", ctx, domain.SupplierSource("txn-1")).Return(nil, apperrors.ErrNotFound)

	txnRepo.On("UpdateTransactionWithEntry", ctx, mock.Anything, (*domain.DailyLedgerEntry)(nil)).Return(nil)

	note := "late payment"
	_, _, err := svc.UpdateTransactionWithSync(ctx, "txn-1", dto.UpdateTransactionRequest{Note: &note}, "user-1")
	require.NoError(t, err)
	txnRepo.AssertExpectations(t)
}

func TestUpdateTransactionResolvesSupplierLink(t *testing.T) {
	ctx := context.Background()
	svc, txnRepo, ledgerRepo, _ := newTransactionServiceForTest()

	date := domain.NewCalendarDate(2024, time.June, 10)
	txnRepo.On("FindTransactionByID", ctx, "txn-1").Return(&domain.CustomerTransaction{
		TransactionID: "txn-1",
		Direction:     domain.Credit,
		Amount:        dec(100),
		Date:          date,
		Channel:       domain.Cash,
	}, nil)
	ledgerRepo.On("FindEntryBySource", ctx, domain.CustomerSource("txn-1")).Return(nil, apperrors.ErrNotFound)
	ledgerRepo.On("FindEntryBySource", ctx, domain.SupplierSource("txn-1")).Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: date, Mode: domain.CashOut, Amount: dec(100),
		Source: domain.SupplierSource("txn-1"),
	}, nil)

	txnRepo.On("UpdateTransactionWithEntry", ctx, mock.Anything, mock.MatchedBy(func(e *domain.DailyLedgerEntry) bool {
		return e != nil && e.EntryID == "entry-1"
	})).Return(nil)

	amount := dec(250)
	_, _, err := svc.UpdateTransactionWithSync(ctx, "txn-1", dto.UpdateTransactionRequest{Amount: &amount}, "user-1")
	require.NoError(t, err)
	txnRepo.AssertExpectations(t)
}

func TestDeleteTransactionWithSync(t *testing.T) {
	ctx := context.Background()
	svc, txnRepo, ledgerRepo, _ := newTransactionServiceForTest()

	date := domain.NewCalendarDate(2024, time.June, 10)
	txnRepo.On("FindTransactionByID", ctx, "txn-1").Return(&domain.CustomerTransaction{
		TransactionID: "txn-1", Date: date,
	}, nil)
	ledgerRepo.On("FindEntryBySource", ctx, domain.CustomerSource("txn-1")).Return(&domain.DailyLedgerEntry{
		EntryID: "entry-1", Date: date, Source: domain.CustomerSource("txn-1"),
	}, nil)
	txnRepo.On("DeleteTransactionWithEntry", ctx, "txn-1", "entry-1").Return(nil)

	got, err := svc.DeleteTransactionWithSync(ctx, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, date, got)
	txnRepo.AssertExpectations(t)
}

func TestDeleteTransactionWithSyncOrphan(t *testing.T) {
	ctx := context.Background()
	svc, txnRepo, ledgerRepo, _ := newTransactionServiceForTest()

	date := domain.NewCalendarDate(2024, time.June, 10)
	txnRepo.On("FindTransactionByID", ctx, "txn-1").Return(&domain.CustomerTransaction{
		TransactionID: "txn-1", Date: date,
	}, nil)
	ledgerRepo.On("FindEntryBySource", ctx, domain.CustomerSource("txn-1")).Return(nil, apperrors.ErrNotFound)
	ledgerRepo.On("FindEntryBySource", ctx, domain.SupplierSource("txn-1")).Return(nil, apperrors.ErrNotFound)
	txnRepo.On("DeleteTransactionWithEntry", ctx, "txn-1", "").Return(nil)

	_, err := svc.DeleteTransactionWithSync(ctx, "txn-1")
	require.NoError(t, err)
	txnRepo.AssertExpectations(t)
}
