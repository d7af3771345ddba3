package mapping

import (
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/models"
)

// ToModelLedgerEntry converts a domain DailyLedgerEntry to a model row.
// An unlinked entry maps to NULL source columns.
func ToModelLedgerEntry(d domain.DailyLedgerEntry) models.DailyLedgerEntry {
	m := models.DailyLedgerEntry{
		EntryID:     d.EntryID,
		Date:        d.Date.Time(),
		Mode:        string(d.Mode),
		Amount:      d.Amount,
		Party:       d.Party,
		Note:        d.Note,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if !d.Source.IsZero() {
		sourceType := string(d.Source.Type)
		sourceID := d.Source.ID
		m.SourceType = &sourceType
		m.SourceID = &sourceID
	}
	return m
}

// ToDomainLedgerEntry converts a model row to a domain DailyLedgerEntry.
func ToDomainLedgerEntry(m models.DailyLedgerEntry) domain.DailyLedgerEntry {
	d := domain.DailyLedgerEntry{
		EntryID:     m.EntryID,
		Date:        domain.CalendarDateOf(m.Date),
		Mode:        domain.LedgerMode(m.Mode),
		Amount:      m.Amount,
		Party:       m.Party,
		Note:        m.Note,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.SourceType != nil && m.SourceID != nil {
		d.Source = domain.SourceRef{Type: domain.SourceType(*m.SourceType), ID: *m.SourceID}
	}
	return d
}

// ToDomainLedgerEntrySlice converts model rows to domain ledger entries.
func ToDomainLedgerEntrySlice(ms []models.DailyLedgerEntry) []domain.DailyLedgerEntry {
	ds := make([]domain.DailyLedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
