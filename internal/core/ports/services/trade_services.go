package services

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
)

// TradeSvcFacade defines trading record operations. Trades live outside the
// daily cash ledger; nothing here touches DailyBalance rows.
type TradeSvcFacade interface {
	// CreateTrade records a buy/sell trade and computes its total and profit.
	CreateTrade(ctx context.Context, req dto.CreateTradeRequest, creatorUserID string) (*domain.TradeTransaction, error)

	// GetTrade retrieves a trade record by ID.
	GetTrade(ctx context.Context, tradeID string) (*domain.TradeTransaction, error)

	// ListTrades retrieves trade records, optionally filtered by farm name.
	ListTrades(ctx context.Context, farmName *string) ([]domain.TradeTransaction, error)

	// UpdateTrade applies edits and recomputes the derived fields.
	UpdateTrade(ctx context.Context, tradeID string, req dto.UpdateTradeRequest, updaterUserID string) (*domain.TradeTransaction, error)

	// DeleteTrade removes a trade record.
	DeleteTrade(ctx context.Context, tradeID string) error

	// Summary aggregates bought/sold/profit totals, optionally per farm.
	Summary(ctx context.Context, farmName *string) (*dto.TradeSummaryResponse, error)
}
