package mapping

import (
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/models"
)

// ToModelBalance converts a domain DailyBalance to a model row.
func ToModelBalance(d domain.DailyBalance) models.DailyBalance {
	return models.DailyBalance{
		BalanceID:   d.BalanceID,
		Date:        d.Date.Time(),
		OpeningCash: d.OpeningCash,
		OpeningBank: d.OpeningBank,
		ClosingCash: d.ClosingCash,
		ClosingBank: d.ClosingBank,
		Note:        d.Note,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBalance converts a model row to a domain DailyBalance.
func ToDomainBalance(m models.DailyBalance) domain.DailyBalance {
	return domain.DailyBalance{
		BalanceID:   m.BalanceID,
		Date:        domain.CalendarDateOf(m.Date),
		OpeningCash: m.OpeningCash,
		OpeningBank: m.OpeningBank,
		ClosingCash: m.ClosingCash,
		ClosingBank: m.ClosingBank,
		Note:        m.Note,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBalanceSlice converts model rows to domain balances.
func ToDomainBalanceSlice(ms []models.DailyBalance) []domain.DailyBalance {
	ds := make([]domain.DailyBalance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBalance(m)
	}
	return ds
}
