package dto

import (
	"time"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a customer
// transaction through the synced path.
type CreateTransactionRequest struct {
	CustomerID    string                `json:"customerID" binding:"required"`
	Direction     domain.Direction      `json:"direction" binding:"required,oneof=CREDIT DEBIT"`
	Amount        decimal.Decimal       `json:"amount" binding:"required,positivedecimal"`
	Date          domain.CalendarDate   `json:"date" binding:"required"`
	Channel       domain.PaymentChannel `json:"channel" binding:"required,oneof=CASH BANK"`
	Note          string                `json:"note"`
	VoiceNotePath string                `json:"voiceNotePath"`
	IsSupplier    bool                  `json:"isSupplier"` // Tags the ledger link SUPPLIER instead of CUSTOMER
}

// UpdateTransactionRequest defines the data allowed for editing a transaction.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateTransactionRequest struct {
	Direction *domain.Direction      `json:"direction" binding:"omitempty,oneof=CREDIT DEBIT"`
	Amount    *decimal.Decimal       `json:"amount"`
	Date      *domain.CalendarDate   `json:"date"`
	Channel   *domain.PaymentChannel `json:"channel" binding:"omitempty,oneof=CASH BANK"`
	Note      *string                `json:"note"`
}

// TransactionResponse defines the data returned for a customer transaction.
type TransactionResponse struct {
	TransactionID string                `json:"transactionID"`
	CustomerID    string                `json:"customerID"`
	Direction     domain.Direction      `json:"direction"`
	Amount        decimal.Decimal       `json:"amount"`
	Date          domain.CalendarDate   `json:"date"`
	Channel       domain.PaymentChannel `json:"channel"`
	Note          string                `json:"note"`
	VoiceNotePath string                `json:"voiceNotePath"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ToTransactionResponse converts a domain.CustomerTransaction to its DTO.
func ToTransactionResponse(t *domain.CustomerTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		CustomerID:    t.CustomerID,
		Direction:     t.Direction,
		Amount:        t.Amount,
		Date:          t.Date,
		Channel:       t.Channel,
		Note:          t.Note,
		VoiceNotePath: t.VoiceNotePath,
		CreatedAt:     t.CreatedAt,
	}
}

// ListTransactionsResponse wraps a page of transactions with its cursor.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of domain transactions to DTOs.
func ToListTransactionsResponse(txns []domain.CustomerTransaction, nextToken *string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}
