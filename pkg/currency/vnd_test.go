package currency

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "0", want: "0\u00a0₫"},
		{amount: "999", want: "999\u00a0₫"},
		{amount: "1000", want: "1.000\u00a0₫"},
		{amount: "550000", want: "550.000\u00a0₫"},
		{amount: "1000000", want: "1.000.000\u00a0₫"},
		{amount: "1234567890", want: "1.234.567.890\u00a0₫"},
		{amount: "1500.4", want: "1.500\u00a0₫"},
		{amount: "1500.5", want: "1.501\u00a0₫"},
		{amount: "12345678901234567", want: "12.345.678.901.234.567\u00a0₫"},
		{amount: "18446744073709551615", want: "18.446.744.073.709.551.615\u00a0₫"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := Format(decimal.RequireFromString(tt.amount))
			if err != nil {
				t.Fatalf("Format(%s) error = %v", tt.amount, err)
			}
			if got != tt.want {
				t.Errorf("Format(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	amount := decimal.NewFromInt(2500000)
	first, err := Format(amount)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if got, _ := Format(amount); got != first {
			t.Fatalf("Format changed between calls: %q vs %q", got, first)
		}
	}
}

func TestFormatNegative(t *testing.T) {
	_, err := Format(decimal.NewFromInt(-1))
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("Format(-1) error = %v, want ErrNegativeAmount", err)
	}
}

func TestFormatTooLarge(t *testing.T) {
	_, err := Format(decimal.RequireFromString("18446744073709551616"))
	if !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("Format(2^64) error = %v, want ErrAmountTooLarge", err)
	}
}
