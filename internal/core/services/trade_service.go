package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/khatasync/khata_backend/internal/middleware"
)

// TradeService implements trading record operations. Trades track their own
// profit and loss and never touch the daily cash ledger or balances.
type TradeService struct {
	TradeRepository portsrepo.TradeRepositoryFacade
}

func NewTradeService(tradeRepo portsrepo.TradeRepositoryFacade) *TradeService {
	return &TradeService{TradeRepository: tradeRepo}
}

func (s *TradeService) CreateTrade(ctx context.Context, req dto.CreateTradeRequest, creatorUserID string) (*domain.TradeTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Quantity.IsPositive() || !req.Rate.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	now := time.Now()
	trade := domain.TradeTransaction{
		TradeID:   uuid.NewString(),
		FarmName:  req.FarmName,
		TradeType: req.TradeType,
		Item:      req.Item,
		Quantity:  req.Quantity,
		Rate:      req.Rate,
		BuyRate:   req.BuyRate,
		Date:      req.Date,
		Note:      req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	trade.ComputeTotals()

	if err := s.TradeRepository.SaveTrade(ctx, trade); err != nil {
		logger.Error("Failed to save trade", slog.String("error", err.Error()), slog.String("trade_id", trade.TradeID))
		return nil, err
	}

	logger.Info("Trade recorded", slog.String("trade_id", trade.TradeID), slog.String("type", string(trade.TradeType)))
	return &trade, nil
}

func (s *TradeService) GetTrade(ctx context.Context, tradeID string) (*domain.TradeTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	trade, err := s.TradeRepository.FindTradeByID(ctx, tradeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find trade by ID", slog.String("error", err.Error()), slog.String("trade_id", tradeID))
		}
		return nil, err
	}
	return trade, nil
}

func (s *TradeService) ListTrades(ctx context.Context, farmName *string) ([]domain.TradeTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	trades, err := s.TradeRepository.ListTrades(ctx, farmName)
	if err != nil {
		logger.Error("Failed to list trades", slog.String("error", err.Error()))
		return nil, err
	}
	return trades, nil
}

func (s *TradeService) UpdateTrade(ctx context.Context, tradeID string, req dto.UpdateTradeRequest, updaterUserID string) (*domain.TradeTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trade, err := s.TradeRepository.FindTradeByID(ctx, tradeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find trade for update", slog.String("error", err.Error()), slog.String("trade_id", tradeID))
		}
		return nil, err
	}

	if req.FarmName != nil {
		trade.FarmName = *req.FarmName
	}
	if req.TradeType != nil {
		trade.TradeType = *req.TradeType
	}
	if req.Item != nil {
		trade.Item = *req.Item
	}
	if req.Quantity != nil {
		if !req.Quantity.IsPositive() {
			return nil, apperrors.ErrInvalidAmount
		}
		trade.Quantity = *req.Quantity
	}
	if req.Rate != nil {
		if !req.Rate.IsPositive() {
			return nil, apperrors.ErrInvalidAmount
		}
		trade.Rate = *req.Rate
	}
	if req.BuyRate != nil {
		trade.BuyRate = *req.BuyRate
	}
	if req.Date != nil {
		trade.Date = *req.Date
	}
	if req.Note != nil {
		trade.Note = *req.Note
	}
	trade.LastUpdatedAt = time.Now()
	trade.LastUpdatedBy = updaterUserID
	trade.ComputeTotals()

	if err := s.TradeRepository.UpdateTrade(ctx, *trade); err != nil {
		logger.Error("Failed to update trade", slog.String("error", err.Error()), slog.String("trade_id", tradeID))
		return nil, err
	}

	logger.Info("Trade updated", slog.String("trade_id", tradeID))
	return trade, nil
}

func (s *TradeService) DeleteTrade(ctx context.Context, tradeID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.TradeRepository.DeleteTrade(ctx, tradeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete trade", slog.String("error", err.Error()), slog.String("trade_id", tradeID))
		}
		return err
	}
	logger.Info("Trade deleted", slog.String("trade_id", tradeID))
	return nil
}

// Summary aggregates bought/sold totals and realized profit, optionally
// scoped to one farm.
func (s *TradeService) Summary(ctx context.Context, farmName *string) (*dto.TradeSummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trades, err := s.TradeRepository.ListTrades(ctx, farmName)
	if err != nil {
		logger.Error("Failed to list trades for summary", slog.String("error", err.Error()))
		return nil, err
	}

	summary := dto.TradeSummaryResponse{TradeCount: len(trades)}
	if farmName != nil {
		summary.FarmName = *farmName
	}
	for _, t := range trades {
		switch t.TradeType {
		case domain.TradeBuy:
			summary.TotalBought = summary.TotalBought.Add(t.Total)
		case domain.TradeSell:
			summary.TotalSold = summary.TotalSold.Add(t.Total)
			summary.TotalProfit = summary.TotalProfit.Add(t.Profit)
		}
	}
	return &summary, nil
}
