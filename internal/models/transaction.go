package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerTransaction is the customer_transactions table row. The date column
// holds midnight UTC; day granularity is enforced at the domain boundary.
type CustomerTransaction struct {
	TransactionID string          `json:"transactionID"`
	CustomerID    string          `json:"customerID"`
	Direction     string          `json:"direction"` // CREDIT | DEBIT
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Channel       string          `json:"channel"` // CASH | BANK
	Note          string          `json:"note"`
	VoiceNotePath string          `json:"voiceNotePath"`
	AuditFields
}
