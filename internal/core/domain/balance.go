package domain

import "github.com/shopspring/decimal"

// DailyBalance is the opening/closing cash and bank snapshot for one calendar
// day. Rows are keyed by date and derived from the day's ledger entries:
//
//	closingCash = openingCash + Σ CASH_IN − Σ CASH_OUT
//	closingBank = openingBank + Σ BANK_IN − Σ BANK_OUT
//
// and for adjacent rows, day N+1's opening equals day N's closing, except the
// earliest row in a propagation run, whose opening is the user-set baseline.
// Rows are created lazily and never deleted automatically.
type DailyBalance struct {
	BalanceID   string          `json:"balanceID"` // Primary Key (UUID)
	Date        CalendarDate    `json:"date"`      // Unique key
	OpeningCash decimal.Decimal `json:"openingCash"`
	OpeningBank decimal.Decimal `json:"openingBank"`
	ClosingCash decimal.Decimal `json:"closingCash"`
	ClosingBank decimal.Decimal `json:"closingBank"`
	Note        string          `json:"note"`
	AuditFields
}
