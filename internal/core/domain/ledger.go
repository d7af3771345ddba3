package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LedgerMode classifies a DailyLedgerEntry's cash-flow effect.
// PURCHASE is record-only: it contributes to neither cash nor bank totals.
type LedgerMode string

const (
	CashIn   LedgerMode = "CASH_IN"
	CashOut  LedgerMode = "CASH_OUT"
	BankIn   LedgerMode = "BANK_IN"
	BankOut  LedgerMode = "BANK_OUT"
	Purchase LedgerMode = "PURCHASE"
)

// DeriveLedgerMode maps a transaction's direction and payment channel to the
// ledger mode of its paired entry. DEBIT (money received) is an inflow,
// CREDIT (money given out) is an outflow; the channel picks the cash or bank
// variant. Because the mapping factors cleanly, changing only the channel of
// an existing transaction preserves its IN/OUT sense.
func DeriveLedgerMode(direction Direction, channel PaymentChannel) (LedgerMode, error) {
	switch {
	case direction == Debit && channel == Cash:
		return CashIn, nil
	case direction == Debit && channel == Bank:
		return BankIn, nil
	case direction == Credit && channel == Cash:
		return CashOut, nil
	case direction == Credit && channel == Bank:
		return BankOut, nil
	}
	return "", fmt.Errorf("no ledger mode for direction %q channel %q", direction, channel)
}

// ExpenseLedgerMode maps an expense's payment channel to its ledger mode.
// Expenses only ever take money out.
func ExpenseLedgerMode(channel PaymentChannel) (LedgerMode, error) {
	switch channel {
	case Cash:
		return CashOut, nil
	case Bank:
		return BankOut, nil
	}
	return "", fmt.Errorf("no expense ledger mode for channel %q", channel)
}

// SourceType tags the kind of record a ledger entry was derived from.
type SourceType string

const (
	SourceCustomer SourceType = "CUSTOMER"
	SourceSupplier SourceType = "SUPPLIER"
	SourceExpense  SourceType = "EXPENSE"
)

// SourceRef is the typed back-reference from a DailyLedgerEntry to the record
// that caused it. The zero value means the entry is unlinked (created by a
// direct user action rather than the synced path). The reference is used for
// lookup and sync only, never for lifetime management.
type SourceRef struct {
	Type SourceType `json:"type"`
	ID   string     `json:"id"`
}

// IsZero reports whether the reference is the unlinked state.
func (r SourceRef) IsZero() bool { return r == SourceRef{} }

// CustomerSource returns a reference to a customer transaction.
func CustomerSource(id string) SourceRef { return SourceRef{Type: SourceCustomer, ID: id} }

// SupplierSource returns a reference to a supplier-side customer transaction.
func SupplierSource(id string) SourceRef { return SourceRef{Type: SourceSupplier, ID: id} }

// ExpenseSource returns a reference to an expense.
func ExpenseSource(id string) SourceRef { return SourceRef{Type: SourceExpense, ID: id} }

// DailyLedgerEntry is one money movement in the daily cashbook.
// CreatedAt (from AuditFields) orders entries within a day for display only;
// balance math never depends on it.
type DailyLedgerEntry struct {
	EntryID string          `json:"entryID"` // Primary Key (UUID)
	Date    CalendarDate    `json:"date"`
	Mode    LedgerMode      `json:"mode"`
	Amount  decimal.Decimal `json:"amount"` // Positive value
	Party   string          `json:"party"`  // Customer name or expense category
	Note    string          `json:"note"`
	Source  SourceRef       `json:"source"` // Zero when the entry is unlinked
	AuditFields
}
