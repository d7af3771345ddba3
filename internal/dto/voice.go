package dto

import (
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoiceRecordRequest carries the transcribed phrase to parse and record.
type VoiceRecordRequest struct {
	Text string `json:"text" binding:"required"`
	// Date the record lands on; defaults to today when omitted.
	Date *domain.CalendarDate `json:"date"`
}

// VoiceIntentResponse echoes what the parser understood.
type VoiceIntentResponse struct {
	PartyName string                `json:"partyName"`
	Direction domain.Direction      `json:"direction,omitempty"`
	IsExpense bool                  `json:"isExpense"`
	Amount    decimal.Decimal       `json:"amount"`
	Channel   domain.PaymentChannel `json:"channel"`
}

// ToVoiceIntentResponse converts a domain.VoiceIntent to its DTO.
func ToVoiceIntentResponse(i domain.VoiceIntent) VoiceIntentResponse {
	return VoiceIntentResponse{
		PartyName: i.PartyName,
		Direction: i.Direction,
		IsExpense: i.IsExpense,
		Amount:    i.Amount,
		Channel:   i.Channel,
	}
}

// VoiceRecordResponse reports what the voice flow created.
type VoiceRecordResponse struct {
	Intent      VoiceIntentResponse  `json:"intent"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Expense     *ExpenseResponse     `json:"expense,omitempty"`
}
