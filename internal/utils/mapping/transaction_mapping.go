package mapping

import (
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/models"
)

// ToModelTransaction converts a domain CustomerTransaction to a model row.
func ToModelTransaction(d domain.CustomerTransaction) models.CustomerTransaction {
	return models.CustomerTransaction{
		TransactionID: d.TransactionID,
		CustomerID:    d.CustomerID,
		Direction:     string(d.Direction),
		Amount:        d.Amount,
		Date:          d.Date.Time(),
		Channel:       string(d.Channel),
		Note:          d.Note,
		VoiceNotePath: d.VoiceNotePath,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model row to a domain CustomerTransaction.
func ToDomainTransaction(m models.CustomerTransaction) domain.CustomerTransaction {
	return domain.CustomerTransaction{
		TransactionID: m.TransactionID,
		CustomerID:    m.CustomerID,
		Direction:     domain.Direction(m.Direction),
		Amount:        m.Amount,
		Date:          domain.CalendarDateOf(m.Date),
		Channel:       domain.PaymentChannel(m.Channel),
		Note:          m.Note,
		VoiceNotePath: m.VoiceNotePath,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts model rows to domain transactions.
func ToDomainTransactionSlice(ms []models.CustomerTransaction) []domain.CustomerTransaction {
	ds := make([]domain.CustomerTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
