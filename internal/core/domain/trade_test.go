package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsSell(t *testing.T) {
	trade := TradeTransaction{
		TradeType: TradeSell,
		Quantity:  decimal.NewFromInt(10),
		Rate:      decimal.NewFromInt(25),
		BuyRate:   decimal.NewFromInt(20),
	}
	trade.ComputeTotals()
	assert.True(t, trade.Total.Equal(decimal.NewFromInt(250)))
	assert.True(t, trade.Profit.Equal(decimal.NewFromInt(50)))
}

func TestComputeTotalsBuyHasNoProfit(t *testing.T) {
	trade := TradeTransaction{
		TradeType: TradeBuy,
		Quantity:  decimal.NewFromInt(8),
		Rate:      decimal.NewFromInt(30),
		Profit:    decimal.NewFromInt(999), // stale value must be cleared
	}
	trade.ComputeTotals()
	assert.True(t, trade.Total.Equal(decimal.NewFromInt(240)))
	assert.True(t, trade.Profit.IsZero())
}

func TestComputeTotalsSellAtLoss(t *testing.T) {
	trade := TradeTransaction{
		TradeType: TradeSell,
		Quantity:  decimal.NewFromInt(5),
		Rate:      decimal.NewFromInt(18),
		BuyRate:   decimal.NewFromInt(20),
	}
	trade.ComputeTotals()
	assert.True(t, trade.Profit.Equal(decimal.NewFromInt(-10)))
}
