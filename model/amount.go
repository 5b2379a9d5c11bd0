package model

import (
	"errors"
	"strconv"
)

// Sentinel errors for amount invariants. The language pipeline wraps these
// with position context; programmatic callers can test them with errors.Is.
var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrNegativeAmount   = errors.New("negative amount")
)

// Amount is a monetary value paired with its currency.
//
// Two amounts are comparable only when their currencies match. Comparing
// across currencies returns [ErrCurrencyMismatch] rather than converting:
// the model has no exchange-rate concept.
type Amount struct {
	Value    float64
	Currency Currency
}

// ZeroAmount returns a zero-valued amount in the given currency.
func ZeroAmount(c Currency) Amount {
	return Amount{Value: 0, Currency: c}
}

// String formats the amount as it appears in source text, e.g. "25 USD".
func (a Amount) String() string {
	return strconv.FormatFloat(a.Value, 'f', -1, 64) + " " + a.Currency.String()
}

// IsZero reports whether the amount has a zero value.
func (a Amount) IsZero() bool {
	return a.Value == 0
}

// Cmp compares a against b and returns -1, 0, or +1.
// It returns [ErrCurrencyMismatch] when the currencies differ.
func (a Amount) Cmp(b Amount) (int, error) {
	if a.Currency != b.Currency {
		return 0, ErrCurrencyMismatch
	}

	switch {
	case a.Value < b.Value:
		return -1, nil
	case a.Value > b.Value:
		return +1, nil
	default:
		return 0, nil
	}
}
