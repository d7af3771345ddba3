package mapping

import (
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model row.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Date:        d.Date.Time(),
		Category:    d.Category,
		Amount:      d.Amount,
		Channel:     string(d.Channel),
		Note:        d.Note,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model row to a domain Expense.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Date:        domain.CalendarDateOf(m.Date),
		Category:    m.Category,
		Amount:      m.Amount,
		Channel:     domain.PaymentChannel(m.Channel),
		Note:        m.Note,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts model rows to domain expenses.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
