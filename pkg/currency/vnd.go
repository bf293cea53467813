// pkg/currency/vnd.go

// Package currency formats amounts as Vietnamese Dong.
package currency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbol follows the amount, separated by a no-break space, as vi-VN does.
const Symbol = "\u00a0₫"

var (
	// ErrNegativeAmount is returned for amounts below zero. Receipts are built
	// from non-negative quantities and prices, so a negative value is a bug upstream.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrAmountTooLarge is returned when the rounded amount does not fit in a uint64.
	ErrAmountTooLarge = errors.New("amount too large")
)

var (
	vnd     = currency.MustParseISO("VND")
	printer = message.NewPrinter(language.Vietnamese)
	scale   = vndScale()
)

func vndScale() int {
	s, _ := currency.Standard.Rounding(vnd)
	return s
}

// Format renders amount as "1.000.000 ₫": no fraction digits, grouped with dots.
// The amount is printed from its exact integer value, never through a float.
func Format(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", fmt.Errorf("format %s: %w", amount, ErrNegativeAmount)
	}
	whole := amount.Round(int32(scale)).BigInt()
	if !whole.IsUint64() {
		return "", fmt.Errorf("format %s: %w", amount, ErrAmountTooLarge)
	}
	return printer.Sprintf("%v", number.Decimal(whole.Uint64(), number.Scale(scale))) + Symbol, nil
}
