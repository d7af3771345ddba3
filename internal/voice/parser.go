// Package voice parses transcribed phrases like "received 500 from Ramesh by
// bank" or "kharcha 200 fuel" into structured intents. The parser is keyword
// driven and fully offline; it understands a mix of English and Hinglish
// bookkeeping vocabulary.
package voice

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var amountPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Keyword sets. Matching is on lowercased whole words.
var (
	expenseWords = map[string]bool{
		"expense": true, "spent": true, "kharcha": true, "kharch": true,
	}
	receivedWords = map[string]bool{
		"received": true, "got": true, "liya": true, "liye": true, "aaya": true, "mila": true,
	}
	givenWords = map[string]bool{
		"gave": true, "paid": true, "diya": true, "diye": true, "udhar": true, "lent": true,
	}
	bankWords = map[string]bool{
		"bank": true, "online": true, "upi": true, "gpay": true, "phonepe": true, "paytm": true, "transfer": true,
	}
	// Words that carry no party information once the rest is parsed.
	fillerWords = map[string]bool{
		"rs": true, "rs.": true, "rupees": true, "rupee": true, "inr": true, "₹": true,
		"from": true, "to": true, "by": true, "in": true, "on": true, "for": true,
		"cash": true, "se": true, "ko": true, "ka": true, "ki": true, "ke": true, "pe": true, "par": true,
		"the": true, "a": true, "an": true,
	}
)

// Parser is the built-in keyword IntentParser.
type Parser struct{}

func NewParser() *Parser { return &Parser{} }

// Parse extracts the party, direction, amount and channel from a phrase.
// It fails with a validation error when no amount is present or when a
// non-expense phrase has no direction keyword.
func (p *Parser) Parse(text string) (*domain.VoiceIntent, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.NewAppError(400, "empty voice phrase", apperrors.ErrValidation)
	}

	amountStr := amountPattern.FindString(trimmed)
	if amountStr == "" {
		return nil, apperrors.NewAppError(400, "no amount found in voice phrase", apperrors.ErrValidation)
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil || !amount.IsPositive() {
		return nil, apperrors.NewAppError(400, fmt.Sprintf("invalid amount %q in voice phrase", amountStr), apperrors.ErrValidation)
	}

	intent := &domain.VoiceIntent{Amount: amount, Channel: domain.Cash}

	var partyTokens []string
	for _, raw := range strings.Fields(strings.ToLower(trimmed)) {
		token := strings.Trim(raw, ".,!?")
		switch {
		case strings.ContainsAny(token, "0123456789"):
			// the amount (possibly glued to a currency sign); numbers are
			// never part of a party name
		case expenseWords[token]:
			intent.IsExpense = true
		case receivedWords[token]:
			intent.Direction = domain.Debit
		case givenWords[token]:
			intent.Direction = domain.Credit
		case bankWords[token]:
			intent.Channel = domain.Bank
		case fillerWords[token]:
		default:
			partyTokens = append(partyTokens, token)
		}
	}
	intent.PartyName = strings.Join(partyTokens, " ")

	if intent.IsExpense {
		// Expense phrases need no direction; money only goes out.
		intent.Direction = ""
		if intent.PartyName == "" {
			return nil, apperrors.NewAppError(400, "no expense category found in voice phrase", apperrors.ErrValidation)
		}
		return intent, nil
	}

	if intent.Direction == "" {
		return nil, apperrors.NewAppError(400, "no direction keyword found in voice phrase", apperrors.ErrValidation)
	}
	if intent.PartyName == "" {
		return nil, apperrors.NewAppError(400, "no party name found in voice phrase", apperrors.ErrValidation)
	}
	return intent, nil
}
