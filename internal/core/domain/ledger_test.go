package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveLedgerMode(t *testing.T) {
	tests := []struct {
		direction Direction
		channel   PaymentChannel
		want      LedgerMode
	}{
		{Debit, Cash, CashIn},
		{Debit, Bank, BankIn},
		{Credit, Cash, CashOut},
		{Credit, Bank, BankOut},
	}
	for _, tt := range tests {
		mode, err := DeriveLedgerMode(tt.direction, tt.channel)
		require.NoError(t, err)
		assert.Equal(t, tt.want, mode)
	}

	_, err := DeriveLedgerMode("", Cash)
	assert.Error(t, err)
	_, err = DeriveLedgerMode(Debit, "CHEQUE")
	assert.Error(t, err)
}

func TestExpenseLedgerMode(t *testing.T) {
	mode, err := ExpenseLedgerMode(Cash)
	require.NoError(t, err)
	assert.Equal(t, CashOut, mode)

	mode, err = ExpenseLedgerMode(Bank)
	require.NoError(t, err)
	assert.Equal(t, BankOut, mode)

	_, err = ExpenseLedgerMode("")
	assert.Error(t, err)
}

func TestSourceRefZeroMeansUnlinked(t *testing.T) {
	assert.True(t, SourceRef{}.IsZero())
	assert.False(t, CustomerSource("txn-1").IsZero())
	assert.Equal(t, SourceCustomer, CustomerSource("txn-1").Type)
	assert.Equal(t, SourceSupplier, SupplierSource("txn-1").Type)
	assert.Equal(t, SourceExpense, ExpenseSource("exp-1").Type)
}
