package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyLedgerEntry is the daily_ledger_entries table row. SourceType and
// SourceID are NULL for unlinked entries; the pair is unique when present.
type DailyLedgerEntry struct {
	EntryID    string          `json:"entryID"`
	Date       time.Time       `json:"date"`
	Mode       string          `json:"mode"` // CASH_IN | CASH_OUT | BANK_IN | BANK_OUT | PURCHASE
	Amount     decimal.Decimal `json:"amount"`
	Party      string          `json:"party"`
	Note       string          `json:"note"`
	SourceType *string         `json:"sourceType"` // CUSTOMER | SUPPLIER | EXPENSE
	SourceID   *string         `json:"sourceID"`
	AuditFields
}
