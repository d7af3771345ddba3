package services

import (
	"context"
	"testing"
	"time"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerServiceForTest() (*CustomerService, *mockCustomerRepo, *mockTransactionRepo) {
	customerRepo := new(mockCustomerRepo)
	txnRepo := new(mockTransactionRepo)
	return NewCustomerService(customerRepo, txnRepo), customerRepo, txnRepo
}

func TestUpdateCustomerRenameTriggersPropagation(t *testing.T) {
	ctx := context.Background()
	svc, customerRepo, _ := newCustomerServiceForTest()

	customerRepo.On("FindCustomerByID", ctx, "cust-1").Return(&domain.Customer{
		CustomerID: "cust-1", Name: "Ramesh",
	}, nil)
	customerRepo.On("UpdateCustomer", ctx, mock.Anything).Return(nil)
	customerRepo.On("ApplyRename", ctx, "cust-1", "Ramesh", "Ramesh Kumar").Return(nil)

	newName := "Ramesh Kumar"
	customer, err := svc.UpdateCustomer(ctx, "cust-1", dto.UpdateCustomerRequest{Name: &newName}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", customer.Name)
	customerRepo.AssertExpectations(t)
}

func TestUpdateCustomerWithoutNameChangeSkipsPropagation(t *testing.T) {
	ctx := context.Background()
	svc, customerRepo, _ := newCustomerServiceForTest()

	customerRepo.On("FindCustomerByID", ctx, "cust-1").Return(&domain.Customer{
		CustomerID: "cust-1", Name: "Ramesh",
	}, nil)
	customerRepo.On("UpdateCustomer", ctx, mock.Anything).Return(nil)

	phone := "9876543210"
	_, err := svc.UpdateCustomer(ctx, "cust-1", dto.UpdateCustomerRequest{Phone: &phone}, "user-1")
	require.NoError(t, err)
	customerRepo.AssertNotCalled(t, "ApplyRename", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCustomerReturnsEarliestDate(t *testing.T) {
	ctx := context.Background()
	svc, customerRepo, _ := newCustomerServiceForTest()

	earliest := domain.NewCalendarDate(2023, time.November, 12)
	customerRepo.On("DeleteCustomerCascade", ctx, "cust-1").Return(earliest, nil)

	got, err := svc.DeleteCustomer(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, earliest, got)
}

func TestStatementRunningBalance(t *testing.T) {
	ctx := context.Background()
	svc, customerRepo, txnRepo := newCustomerServiceForTest()

	customerRepo.On("FindCustomerByID", ctx, "cust-1").Return(&domain.Customer{
		CustomerID:     "cust-1",
		Name:           "Ramesh",
		OpeningBalance: dec(100),
	}, nil)

	d1 := domain.NewCalendarDate(2024, time.April, 1)
	d2 := domain.NewCalendarDate(2024, time.April, 5)
	d3 := domain.NewCalendarDate(2024, time.April, 9)
	next := "page-2"

	// The repository pages newest first.
	txnRepo.On("ListTransactionsByCustomer", ctx, "cust-1", statementPageSize, (*string)(nil)).Return(
		[]domain.CustomerTransaction{
			{TransactionID: "t3", Date: d3, Direction: domain.Debit, Amount: dec(50)},
		}, &next, nil)
	txnRepo.On("ListTransactionsByCustomer", ctx, "cust-1", statementPageSize, &next).Return(
		[]domain.CustomerTransaction{
			{TransactionID: "t2", Date: d2, Direction: domain.Credit, Amount: dec(200)},
			{TransactionID: "t1", Date: d1, Direction: domain.Credit, Amount: dec(100)},
		}, nil, nil)

	statement, err := svc.Statement(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, statement.Lines, 3)

	// Oldest first, running balance from the opening balance: credit raises
	// what the customer owes, debit lowers it.
	assert.Equal(t, "t1", statement.Lines[0].TransactionID)
	assert.True(t, statement.Lines[0].Balance.Equal(dec(200)))
	assert.Equal(t, "t2", statement.Lines[1].TransactionID)
	assert.True(t, statement.Lines[1].Balance.Equal(dec(400)))
	assert.Equal(t, "t3", statement.Lines[2].TransactionID)
	assert.True(t, statement.Lines[2].Balance.Equal(dec(350)))
	assert.True(t, statement.ClosingBalance.Equal(dec(350)))
}
