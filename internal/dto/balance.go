package dto

import (
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetOpeningBalanceRequest seeds or overrides the opening balances for a
// date. The row's opening values become the propagation baseline.
type SetOpeningBalanceRequest struct {
	Date        domain.CalendarDate `json:"date" binding:"required"`
	OpeningCash decimal.Decimal     `json:"openingCash"`
	OpeningBank decimal.Decimal     `json:"openingBank"`
	Note        string              `json:"note"`
}

// RecalculateRequest drives the bulk gap-filling recalculation used after a
// data import, seeded with explicit initial balances.
type RecalculateRequest struct {
	StartDate   domain.CalendarDate `json:"startDate" binding:"required"`
	OpeningCash decimal.Decimal     `json:"openingCash"`
	OpeningBank decimal.Decimal     `json:"openingBank"`
}

// DailyBalanceResponse defines the data returned for a daily balance row.
type DailyBalanceResponse struct {
	Date        domain.CalendarDate `json:"date"`
	OpeningCash decimal.Decimal     `json:"openingCash"`
	OpeningBank decimal.Decimal     `json:"openingBank"`
	ClosingCash decimal.Decimal     `json:"closingCash"`
	ClosingBank decimal.Decimal     `json:"closingBank"`
	Note        string              `json:"note"`
}

// ToDailyBalanceResponse converts a domain.DailyBalance to its DTO.
func ToDailyBalanceResponse(b *domain.DailyBalance) DailyBalanceResponse {
	return DailyBalanceResponse{
		Date:        b.Date,
		OpeningCash: b.OpeningCash,
		OpeningBank: b.OpeningBank,
		ClosingCash: b.ClosingCash,
		ClosingBank: b.ClosingBank,
		Note:        b.Note,
	}
}

// ToListDailyBalanceResponse converts a slice of balance rows to DTOs.
func ToListDailyBalanceResponse(balances []domain.DailyBalance) []DailyBalanceResponse {
	res := make([]DailyBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = ToDailyBalanceResponse(&b)
	}
	return res
}
