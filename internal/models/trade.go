package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeTransaction is the trade_transactions table row.
type TradeTransaction struct {
	TradeID   string          `json:"tradeID"`
	FarmName  string          `json:"farmName"`
	TradeType string          `json:"tradeType"` // BUY | SELL
	Item      string          `json:"item"`
	Quantity  decimal.Decimal `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
	BuyRate   decimal.Decimal `json:"buyRate"`
	Total     decimal.Decimal `json:"total"`
	Profit    decimal.Decimal `json:"profit"`
	Date      time.Time       `json:"date"`
	Note      string          `json:"note"`
	AuditFields
}
