package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount_USD(t *testing.T) {
	amount, _ := decimal.NewFromString("1234.5")
	got := FormatAmount(amount, "USD")
	if got != "$1,234.50" {
		t.Errorf("FormatAmount(1234.5, USD) = %q, want $1,234.50", got)
	}
}

// TestFormatAmount_UnknownCurrency 未知幣別退回兩位小數的純數字
func TestFormatAmount_UnknownCurrency(t *testing.T) {
	amount, _ := decimal.NewFromString("1234.5")
	got := FormatAmount(amount, "???")
	if got != "1234.50" {
		t.Errorf("FormatAmount(1234.5, ???) = %q, want 1234.50", got)
	}
}
