package domain

import "github.com/shopspring/decimal"

// Direction indicates whether money was given to the customer (CREDIT)
// or received from the customer (DEBIT).
type Direction string

const (
	Credit Direction = "CREDIT"
	Debit  Direction = "DEBIT"
)

// PaymentChannel indicates whether money moved as cash or through the bank.
type PaymentChannel string

const (
	Cash PaymentChannel = "CASH"
	Bank PaymentChannel = "BANK"
)

// CustomerTransaction is a single credit or debit against a customer's khata.
// Every transaction created through the synced path is paired with exactly
// one DailyLedgerEntry carrying a source link back to it.
type CustomerTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	CustomerID    string          `json:"customerID"`    // FK -> Customer.customerID (Not Null)
	Direction     Direction       `json:"direction"`     // CREDIT or DEBIT
	Amount        decimal.Decimal `json:"amount"`        // Positive value
	Date          CalendarDate    `json:"date"`          // Day the transaction belongs to
	Channel       PaymentChannel  `json:"channel"`       // CASH or BANK
	Note          string          `json:"note"`
	VoiceNotePath string          `json:"voiceNotePath"` // Optional recording reference
	AuditFields
}
