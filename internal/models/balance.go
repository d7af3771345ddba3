package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBalance is the daily_balances table row. The date column carries a
// unique constraint.
type DailyBalance struct {
	BalanceID   string          `json:"balanceID"`
	Date        time.Time       `json:"date"`
	OpeningCash decimal.Decimal `json:"openingCash"`
	OpeningBank decimal.Decimal `json:"openingBank"`
	ClosingCash decimal.Decimal `json:"closingCash"`
	ClosingBank decimal.Decimal `json:"closingBank"`
	Note        string          `json:"note"`
	AuditFields
}
