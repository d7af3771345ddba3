package voice

import (
	"testing"

	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionPhrases(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name          string
		text          string
		wantParty     string
		wantDirection domain.Direction
		wantAmount    string
		wantChannel   domain.PaymentChannel
	}{
		{
			name:          "received cash",
			text:          "received 500 from ramesh",
			wantParty:     "ramesh",
			wantDirection: domain.Debit,
			wantAmount:    "500",
			wantChannel:   domain.Cash,
		},
		{
			name:          "gave over upi",
			text:          "gave 200 to suresh by upi",
			wantParty:     "suresh",
			wantDirection: domain.Credit,
			wantAmount:    "200",
			wantChannel:   domain.Bank,
		},
		{
			name:          "hinglish udhar",
			text:          "mohan bhai ko 1200.50 udhar diya",
			wantParty:     "mohan bhai",
			wantDirection: domain.Credit,
			wantAmount:    "1200.5",
			wantChannel:   domain.Cash,
		},
		{
			name:          "hinglish received via gpay",
			text:          "ramesh se 750 aaya gpay pe",
			wantParty:     "ramesh",
			wantDirection: domain.Debit,
			wantAmount:    "750",
			wantChannel:   domain.Bank,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, err := p.Parse(tt.text)
			require.NoError(t, err)
			assert.False(t, intent.IsExpense)
			assert.Equal(t, tt.wantParty, intent.PartyName)
			assert.Equal(t, tt.wantDirection, intent.Direction)
			assert.Equal(t, tt.wantChannel, intent.Channel)
			want, _ := decimal.NewFromString(tt.wantAmount)
			assert.True(t, intent.Amount.Equal(want))
		})
	}
}

func TestParseExpensePhrases(t *testing.T) {
	p := NewParser()

	intent, err := p.Parse("kharcha 150 fuel")
	require.NoError(t, err)
	assert.True(t, intent.IsExpense)
	assert.Equal(t, "fuel", intent.PartyName)
	assert.Empty(t, intent.Direction)
	assert.True(t, intent.Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, domain.Cash, intent.Channel)

	intent, err = p.Parse("spent 300 on truck repair by bank transfer")
	require.NoError(t, err)
	assert.True(t, intent.IsExpense)
	assert.Equal(t, "truck repair", intent.PartyName)
	assert.Equal(t, domain.Bank, intent.Channel)
}

func TestParseRejectsIncompletePhrases(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name string
		text string
	}{
		{"empty", "   "},
		{"no amount", "received from ramesh"},
		{"no direction", "500 ramesh"},
		{"no party", "received 500"},
		{"expense without category", "kharcha 150"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.text)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
