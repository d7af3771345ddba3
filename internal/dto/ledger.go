package dto

import (
	"time"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data for an ad hoc (unlinked) ledger
// entry created directly by the user rather than through the synced path.
type CreateLedgerEntryRequest struct {
	Date   domain.CalendarDate `json:"date" binding:"required"`
	Mode   domain.LedgerMode   `json:"mode" binding:"required,oneof=CASH_IN CASH_OUT BANK_IN BANK_OUT PURCHASE"`
	Amount decimal.Decimal     `json:"amount" binding:"required,positivedecimal"`
	Party  string              `json:"party"`
	Note   string              `json:"note"`
}

// UpdateLedgerEntryRequest defines the data allowed for editing a ledger
// entry. Edits to a linked entry propagate back to the source record.
type UpdateLedgerEntryRequest struct {
	Date   *domain.CalendarDate `json:"date"`
	Mode   *domain.LedgerMode   `json:"mode" binding:"omitempty,oneof=CASH_IN CASH_OUT BANK_IN BANK_OUT PURCHASE"`
	Amount *decimal.Decimal     `json:"amount"`
	Party  *string              `json:"party"`
	Note   *string              `json:"note"`
}

// LedgerEntryResponse defines the data returned for a daily ledger entry.
type LedgerEntryResponse struct {
	EntryID    string              `json:"entryID"`
	Date       domain.CalendarDate `json:"date"`
	Mode       domain.LedgerMode   `json:"mode"`
	Amount     decimal.Decimal     `json:"amount"`
	Party      string              `json:"party"`
	Note       string              `json:"note"`
	SourceType domain.SourceType   `json:"sourceType,omitempty"`
	SourceID   string              `json:"sourceID,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.DailyLedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.DailyLedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:    e.EntryID,
		Date:       e.Date,
		Mode:       e.Mode,
		Amount:     e.Amount,
		Party:      e.Party,
		Note:       e.Note,
		SourceType: e.Source.Type,
		SourceID:   e.Source.ID,
		CreatedAt:  e.CreatedAt,
	}
}

// ToListLedgerEntryResponse converts a slice of ledger entries to DTOs.
func ToListLedgerEntryResponse(entries []domain.DailyLedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToLedgerEntryResponse(&e)
	}
	return res
}
