package mapping

import (
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/models"
)

// ToModelTrade converts a domain TradeTransaction to a model row.
func ToModelTrade(d domain.TradeTransaction) models.TradeTransaction {
	return models.TradeTransaction{
		TradeID:     d.TradeID,
		FarmName:    d.FarmName,
		TradeType:   string(d.TradeType),
		Item:        d.Item,
		Quantity:    d.Quantity,
		Rate:        d.Rate,
		BuyRate:     d.BuyRate,
		Total:       d.Total,
		Profit:      d.Profit,
		Date:        d.Date.Time(),
		Note:        d.Note,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrade converts a model row to a domain TradeTransaction.
func ToDomainTrade(m models.TradeTransaction) domain.TradeTransaction {
	return domain.TradeTransaction{
		TradeID:     m.TradeID,
		FarmName:    m.FarmName,
		TradeType:   domain.TradeType(m.TradeType),
		Item:        m.Item,
		Quantity:    m.Quantity,
		Rate:        m.Rate,
		BuyRate:     m.BuyRate,
		Total:       m.Total,
		Profit:      m.Profit,
		Date:        domain.CalendarDateOf(m.Date),
		Note:        m.Note,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTradeSlice converts model rows to domain trades.
func ToDomainTradeSlice(ms []models.TradeTransaction) []domain.TradeTransaction {
	ds := make([]domain.TradeTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrade(m)
	}
	return ds
}
