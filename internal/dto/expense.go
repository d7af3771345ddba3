package dto

import (
	"time"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense through
// the synced path.
type CreateExpenseRequest struct {
	Category string                `json:"category" binding:"required"`
	Amount   decimal.Decimal       `json:"amount" binding:"required,positivedecimal"`
	Date     domain.CalendarDate   `json:"date" binding:"required"`
	Channel  domain.PaymentChannel `json:"channel" binding:"required,oneof=CASH BANK"`
	Note     string                `json:"note"`
}

// UpdateExpenseRequest defines the data allowed for editing an expense.
type UpdateExpenseRequest struct {
	Category *string                `json:"category"`
	Amount   *decimal.Decimal       `json:"amount"`
	Date     *domain.CalendarDate   `json:"date"`
	Channel  *domain.PaymentChannel `json:"channel" binding:"omitempty,oneof=CASH BANK"`
	Note     *string                `json:"note"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID string                `json:"expenseID"`
	Category  string                `json:"category"`
	Amount    decimal.Decimal       `json:"amount"`
	Date      domain.CalendarDate   `json:"date"`
	Channel   domain.PaymentChannel `json:"channel"`
	Note      string                `json:"note"`
	CreatedAt time.Time             `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID: e.ExpenseID,
		Category:  e.Category,
		Amount:    e.Amount,
		Date:      e.Date,
		Channel:   e.Channel,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to DTOs.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}
