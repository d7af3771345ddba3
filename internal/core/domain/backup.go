package domain

import "time"

// SnapshotVersion is the current backup document version. Restores verify it
// before replacing any data.
const SnapshotVersion = 1

// Snapshot is the versioned backup document: every table serialized once.
// Each table is read in full exactly once per export, which is how a backup
// sees a consistent view without coordinating with in-flight writes.
type Snapshot struct {
	Version      int                   `json:"version"`
	ExportedAt   time.Time             `json:"exportedAt"`
	Customers    []Customer            `json:"customers"`
	Transactions []CustomerTransaction `json:"transactions"`
	Expenses     []Expense             `json:"expenses"`
	Trades       []TradeTransaction    `json:"trades"`
	Entries      []DailyLedgerEntry    `json:"entries"`
	Balances     []DailyBalance        `json:"balances"`
}
