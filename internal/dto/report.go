package dto

import (
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementLine is one row of a customer statement with a running balance.
// Balance is positive when the customer owes the business.
type StatementLine struct {
	TransactionID string              `json:"transactionID"`
	Date          domain.CalendarDate `json:"date"`
	Direction     domain.Direction    `json:"direction"`
	Amount        decimal.Decimal     `json:"amount"`
	Note          string              `json:"note"`
	Balance       decimal.Decimal     `json:"balance"`
}

// CustomerStatementResponse is the full statement for one customer.
type CustomerStatementResponse struct {
	CustomerID     string          `json:"customerID"`
	CustomerName   string          `json:"customerName"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Lines          []StatementLine `json:"lines"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// CashbookSummaryResponse aggregates ledger movement over a date range.
type CashbookSummaryResponse struct {
	From      domain.CalendarDate `json:"from"`
	To        domain.CalendarDate `json:"to"`
	CashIn    decimal.Decimal     `json:"cashIn"`
	CashOut   decimal.Decimal     `json:"cashOut"`
	BankIn    decimal.Decimal     `json:"bankIn"`
	BankOut   decimal.Decimal     `json:"bankOut"`
	Purchases decimal.Decimal     `json:"purchases"` // Record-only, excluded from balances
}

// BackupResultResponse reports where a backup landed.
type BackupResultResponse struct {
	FilePath    string `json:"filePath"`
	DriveFileID string `json:"driveFileID,omitempty"`
	ExportedAt  string `json:"exportedAt"`
}
