package dto

import (
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTradeRequest defines the data needed to record a trade transaction.
type CreateTradeRequest struct {
	FarmName  string              `json:"farmName"`
	TradeType domain.TradeType    `json:"tradeType" binding:"required,oneof=BUY SELL"`
	Item      string              `json:"item" binding:"required"`
	Quantity  decimal.Decimal     `json:"quantity" binding:"required"`
	Rate      decimal.Decimal     `json:"rate" binding:"required"`
	BuyRate   decimal.Decimal     `json:"buyRate"` // Cost basis for SELL records
	Date      domain.CalendarDate `json:"date" binding:"required"`
	Note      string              `json:"note"`
}

// UpdateTradeRequest defines the data allowed for editing a trade record.
type UpdateTradeRequest struct {
	FarmName  *string              `json:"farmName"`
	TradeType *domain.TradeType    `json:"tradeType" binding:"omitempty,oneof=BUY SELL"`
	Item      *string              `json:"item"`
	Quantity  *decimal.Decimal     `json:"quantity"`
	Rate      *decimal.Decimal     `json:"rate"`
	BuyRate   *decimal.Decimal     `json:"buyRate"`
	Date      *domain.CalendarDate `json:"date"`
	Note      *string              `json:"note"`
}

// TradeResponse defines the data returned for a trade transaction.
type TradeResponse struct {
	TradeID   string              `json:"tradeID"`
	FarmName  string              `json:"farmName"`
	TradeType domain.TradeType    `json:"tradeType"`
	Item      string              `json:"item"`
	Quantity  decimal.Decimal     `json:"quantity"`
	Rate      decimal.Decimal     `json:"rate"`
	BuyRate   decimal.Decimal     `json:"buyRate"`
	Total     decimal.Decimal     `json:"total"`
	Profit    decimal.Decimal     `json:"profit"`
	Date      domain.CalendarDate `json:"date"`
	Note      string              `json:"note"`
}

// ToTradeResponse converts a domain.TradeTransaction to its DTO.
func ToTradeResponse(t *domain.TradeTransaction) TradeResponse {
	return TradeResponse{
		TradeID:   t.TradeID,
		FarmName:  t.FarmName,
		TradeType: t.TradeType,
		Item:      t.Item,
		Quantity:  t.Quantity,
		Rate:      t.Rate,
		BuyRate:   t.BuyRate,
		Total:     t.Total,
		Profit:    t.Profit,
		Date:      t.Date,
		Note:      t.Note,
	}
}

// ToListTradeResponse converts a slice of trade records to DTOs.
func ToListTradeResponse(trades []domain.TradeTransaction) []TradeResponse {
	res := make([]TradeResponse, len(trades))
	for i, t := range trades {
		res[i] = ToTradeResponse(&t)
	}
	return res
}

// TradeSummaryResponse aggregates trade totals, optionally per farm.
type TradeSummaryResponse struct {
	FarmName    string          `json:"farmName,omitempty"`
	TotalBought decimal.Decimal `json:"totalBought"`
	TotalSold   decimal.Decimal `json:"totalSold"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
	TradeCount  int             `json:"tradeCount"`
}
