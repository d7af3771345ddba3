package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the expenses table row.
type Expense struct {
	ExpenseID string          `json:"expenseID"`
	Date      time.Time       `json:"date"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Channel   string          `json:"channel"` // CASH | BANK
	Note      string          `json:"note"`
	AuditFields
}
