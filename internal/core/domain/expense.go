package domain

import "github.com/shopspring/decimal"

// Expense is money permanently leaving the business with no counterparty
// khata. Like customer transactions, expenses created through the synced path
// are paired with exactly one DailyLedgerEntry (always an OUT mode).
type Expense struct {
	ExpenseID string          `json:"expenseID"` // Primary Key (UUID)
	Date      CalendarDate    `json:"date"`
	Category  string          `json:"category"` // Free text, e.g. "Fuel"
	Amount    decimal.Decimal `json:"amount"`   // Positive value
	Channel   PaymentChannel  `json:"channel"`
	Note      string          `json:"note"`
	AuditFields
}
