package services

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type mockBalanceRepo struct {
	mock.Mock
}

func (m *mockBalanceRepo) FindBalanceByDate(ctx context.Context, date domain.CalendarDate) (*domain.DailyBalance, error) {
	args := m.Called(ctx, date)
	if b, ok := args.Get(0).(*domain.DailyBalance); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBalanceRepo) ListBalancesFrom(ctx context.Context, from domain.CalendarDate) ([]domain.DailyBalance, error) {
	args := m.Called(ctx, from)
	if rows, ok := args.Get(0).([]domain.DailyBalance); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBalanceRepo) ListBalancesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.DailyBalance, error) {
	args := m.Called(ctx, from, to)
	if rows, ok := args.Get(0).([]domain.DailyBalance); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBalanceRepo) UpsertBalanceByDate(ctx context.Context, balance domain.DailyBalance) error {
	return m.Called(ctx, balance).Error(0)
}

func (m *mockBalanceRepo) UpdateBalance(ctx context.Context, balance domain.DailyBalance) error {
	return m.Called(ctx, balance).Error(0)
}

type mockLedgerRepo struct {
	mock.Mock
}

func (m *mockLedgerRepo) FindEntryByID(ctx context.Context, entryID string) (*domain.DailyLedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if e, ok := args.Get(0).(*domain.DailyLedgerEntry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedgerRepo) FindEntryBySource(ctx context.Context, source domain.SourceRef) (*domain.DailyLedgerEntry, error) {
	args := m.Called(ctx, source)
	if e, ok := args.Get(0).(*domain.DailyLedgerEntry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedgerRepo) ListEntriesByDate(ctx context.Context, date domain.CalendarDate) ([]domain.DailyLedgerEntry, error) {
	args := m.Called(ctx, date)
	if entries, ok := args.Get(0).([]domain.DailyLedgerEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedgerRepo) ListEntriesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.DailyLedgerEntry, error) {
	args := m.Called(ctx, from, to)
	if entries, ok := args.Get(0).([]domain.DailyLedgerEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedgerRepo) ListDistinctDatesFrom(ctx context.Context, from domain.CalendarDate) ([]domain.CalendarDate, error) {
	args := m.Called(ctx, from)
	if dates, ok := args.Get(0).([]domain.CalendarDate); ok {
		return dates, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedgerRepo) SaveEntry(ctx context.Context, entry domain.DailyLedgerEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockLedgerRepo) UpdateEntry(ctx context.Context, entry domain.DailyLedgerEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockLedgerRepo) DeleteEntry(ctx context.Context, entryID string) error {
	return m.Called(ctx, entryID).Error(0)
}

type mockTransactionRepo struct {
	mock.Mock
}

func (m *mockTransactionRepo) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CustomerTransaction, error) {
	args := m.Called(ctx, transactionID)
	if t, ok := args.Get(0).(*domain.CustomerTransaction); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionRepo) ListTransactionsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.CustomerTransaction, *string, error) {
	args := m.Called(ctx, customerID, limit, nextToken)
	var txns []domain.CustomerTransaction
	if v, ok := args.Get(0).([]domain.CustomerTransaction); ok {
		txns = v
	}
	var token *string
	if v, ok := args.Get(1).(*string); ok {
		token = v
	}
	return txns, token, args.Error(2)
}

func (m *mockTransactionRepo) ListTransactionsByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.CustomerTransaction, error) {
	args := m.Called(ctx, from, to)
	if txns, ok := args.Get(0).([]domain.CustomerTransaction); ok {
		return txns, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionRepo) SaveTransactionWithEntry(ctx context.Context, txn domain.CustomerTransaction, entry domain.DailyLedgerEntry) error {
	return m.Called(ctx, txn, entry).Error(0)
}

func (m *mockTransactionRepo) UpdateTransactionWithEntry(ctx context.Context, txn domain.CustomerTransaction, entry *domain.DailyLedgerEntry) error {
	return m.Called(ctx, txn, entry).Error(0)
}

func (m *mockTransactionRepo) DeleteTransactionWithEntry(ctx context.Context, transactionID, entryID string) error {
	return m.Called(ctx, transactionID, entryID).Error(0)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if c, ok := args.Get(0).(*domain.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	args := m.Called(ctx, name)
	if c, ok := args.Get(0).(*domain.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) ListCustomers(ctx context.Context, contactType *domain.ContactType) ([]domain.Customer, error) {
	args := m.Called(ctx, contactType)
	if customers, ok := args.Get(0).([]domain.Customer); ok {
		return customers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) DeleteCustomerCascade(ctx context.Context, customerID string) (domain.CalendarDate, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(domain.CalendarDate), args.Error(1)
}

func (m *mockCustomerRepo) ApplyRename(ctx context.Context, customerID, oldName, newName string) error {
	return m.Called(ctx, customerID, oldName, newName).Error(0)
}

type mockExpenseRepo struct {
	mock.Mock
}

func (m *mockExpenseRepo) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if e, ok := args.Get(0).(*domain.Expense); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseRepo) ListExpensesByDateRange(ctx context.Context, from, to domain.CalendarDate) ([]domain.Expense, error) {
	args := m.Called(ctx, from, to)
	if expenses, ok := args.Get(0).([]domain.Expense); ok {
		return expenses, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseRepo) ListExpenseCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]string); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseRepo) SaveExpenseWithEntry(ctx context.Context, expense domain.Expense, entry domain.DailyLedgerEntry) error {
	return m.Called(ctx, expense, entry).Error(0)
}

func (m *mockExpenseRepo) UpdateExpenseWithEntry(ctx context.Context, expense domain.Expense, entry *domain.DailyLedgerEntry) error {
	return m.Called(ctx, expense, entry).Error(0)
}

func (m *mockExpenseRepo) DeleteExpenseWithEntry(ctx context.Context, expenseID, entryID string) error {
	return m.Called(ctx, expenseID, entryID).Error(0)
}

type mockTradeRepo struct {
	mock.Mock
}

func (m *mockTradeRepo) FindTradeByID(ctx context.Context, tradeID string) (*domain.TradeTransaction, error) {
	args := m.Called(ctx, tradeID)
	if t, ok := args.Get(0).(*domain.TradeTransaction); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTradeRepo) ListTrades(ctx context.Context, farmName *string) ([]domain.TradeTransaction, error) {
	args := m.Called(ctx, farmName)
	if trades, ok := args.Get(0).([]domain.TradeTransaction); ok {
		return trades, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTradeRepo) SaveTrade(ctx context.Context, trade domain.TradeTransaction) error {
	return m.Called(ctx, trade).Error(0)
}

func (m *mockTradeRepo) UpdateTrade(ctx context.Context, trade domain.TradeTransaction) error {
	return m.Called(ctx, trade).Error(0)
}

func (m *mockTradeRepo) DeleteTrade(ctx context.Context, tradeID string) error {
	return m.Called(ctx, tradeID).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}
