package domain

import "github.com/shopspring/decimal"

// VoiceIntent is the tuple a spoken phrase parses into, consumed by the
// synced create paths. Exactly one of Direction / IsExpense applies: when
// IsExpense is true the phrase records an expense and PartyName holds the
// category; otherwise it records a customer transaction.
type VoiceIntent struct {
	PartyName string          `json:"partyName"`
	Direction Direction       `json:"direction"`
	IsExpense bool            `json:"isExpense"`
	Amount    decimal.Decimal `json:"amount"`
	Channel   PaymentChannel  `json:"channel"`
}
