package repositories

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
)

// TradeReader defines read operations for trade transaction data.
type TradeReader interface {
	// FindTradeByID retrieves a specific trade record by its unique identifier.
	FindTradeByID(ctx context.Context, tradeID string) (*domain.TradeTransaction, error)

	// ListTrades retrieves trade records, optionally filtered by farm name,
	// newest first.
	ListTrades(ctx context.Context, farmName *string) ([]domain.TradeTransaction, error)
}

// TradeWriter defines write operations for trade transaction data.
type TradeWriter interface {
	// SaveTrade persists a new trade record.
	SaveTrade(ctx context.Context, trade domain.TradeTransaction) error

	// UpdateTrade updates an existing trade record.
	UpdateTrade(ctx context.Context, trade domain.TradeTransaction) error

	// DeleteTrade removes a trade record.
	DeleteTrade(ctx context.Context, tradeID string) error
}

// TradeRepositoryFacade combines all trade repository interfaces.
type TradeRepositoryFacade interface {
	TradeReader
	TradeWriter
}
