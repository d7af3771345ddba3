package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/khatasync/khata_backend/internal/core/ports/services"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/khatasync/khata_backend/internal/middleware"
)

// VoiceService turns transcribed phrases into recorded transactions or
// expenses by running them through the same synced create paths the REST
// endpoints use.
type VoiceService struct {
	Parser             portssvc.IntentParser
	CustomerRepository portsrepo.CustomerReader
	TransactionSvc     portssvc.TransactionSvcFacade
	ExpenseSvc         portssvc.ExpenseSvcFacade
}

func NewVoiceService(parser portssvc.IntentParser, customerRepo portsrepo.CustomerReader, txnSvc portssvc.TransactionSvcFacade, expenseSvc portssvc.ExpenseSvcFacade) *VoiceService {
	return &VoiceService{
		Parser:             parser,
		CustomerRepository: customerRepo,
		TransactionSvc:     txnSvc,
		ExpenseSvc:         expenseSvc,
	}
}

func (s *VoiceService) ParseIntent(ctx context.Context, text string) (*domain.VoiceIntent, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	intent, err := s.Parser.Parse(text)
	if err != nil {
		logger.Warn("Failed to parse voice phrase", slog.String("error", err.Error()))
		return nil, err
	}
	return intent, nil
}

func (s *VoiceService) RecordFromVoice(ctx context.Context, req dto.VoiceRecordRequest, creatorUserID string) (*dto.VoiceRecordResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	intent, err := s.Parser.Parse(req.Text)
	if err != nil {
		logger.Warn("Failed to parse voice phrase", slog.String("error", err.Error()))
		return nil, err
	}

	date := domain.Today()
	if req.Date != nil {
		date = *req.Date
	}

	response := &dto.VoiceRecordResponse{Intent: dto.ToVoiceIntentResponse(*intent)}

	if intent.IsExpense {
		expense, err := s.ExpenseSvc.SaveExpenseWithSync(ctx, dto.CreateExpenseRequest{
			Category: intent.PartyName,
			Amount:   intent.Amount,
			Date:     date,
			Channel:  intent.Channel,
			Note:     req.Text,
		}, creatorUserID)
		if err != nil {
			return nil, err
		}
		er := dto.ToExpenseResponse(expense)
		response.Expense = &er
		logger.Info("Voice phrase recorded as expense", slog.String("expense_id", expense.ExpenseID))
		return response, nil
	}

	customer, err := s.CustomerRepository.FindCustomerByName(ctx, intent.PartyName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voice phrase names an unknown party", slog.String("party", intent.PartyName))
		}
		return nil, err
	}

	txn, err := s.TransactionSvc.RecordTransactionWithSync(ctx, dto.CreateTransactionRequest{
		CustomerID: customer.CustomerID,
		Direction:  intent.Direction,
		Amount:     intent.Amount,
		Date:       date,
		Channel:    intent.Channel,
		Note:       req.Text,
	}, creatorUserID)
	if err != nil {
		return nil, err
	}
	tr := dto.ToTransactionResponse(txn)
	response.Transaction = &tr
	logger.Info("Voice phrase recorded as transaction", slog.String("transaction_id", txn.TransactionID))
	return response, nil
}
