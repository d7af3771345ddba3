package domain

import "github.com/shopspring/decimal"

// TradeType classifies a trading record as a purchase or a sale.
type TradeType string

const (
	TradeBuy  TradeType = "BUY"
	TradeSell TradeType = "SELL"
)

// TradeTransaction is a buy/sell trading record. Trading profit and loss is
// tracked on its own; trades are never reconciled into the daily cash ledger.
type TradeTransaction struct {
	TradeID   string          `json:"tradeID"` // Primary Key (UUID)
	FarmName  string          `json:"farmName"`
	TradeType TradeType       `json:"tradeType"`
	Item      string          `json:"item"`
	Quantity  decimal.Decimal `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`     // Per-unit rate for this leg
	BuyRate   decimal.Decimal `json:"buyRate"`  // Per-unit cost basis, set on SELL records
	Total     decimal.Decimal `json:"total"`    // Quantity × Rate
	Profit    decimal.Decimal `json:"profit"`   // (Rate − BuyRate) × Quantity, SELL only
	Date      CalendarDate    `json:"date"`
	Note      string          `json:"note"`
	AuditFields
}

// ComputeTotals fills the derived Total and Profit fields from the quantity
// and rate fields. Profit stays zero on BUY records.
func (t *TradeTransaction) ComputeTotals() {
	t.Total = t.Quantity.Mul(t.Rate)
	if t.TradeType == TradeSell {
		t.Profit = t.Rate.Sub(t.BuyRate).Mul(t.Quantity)
	} else {
		t.Profit = decimal.Zero
	}
}
