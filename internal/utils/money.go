package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RefundResult is the outcome of a cancellation: the amount returned to the
// customer and the MCO the booking carries afterwards.
type RefundResult struct {
	Refund string
	NewMCO string
}

// ParseAmount converts a decimal string into a decimal value. Blank input is
// treated as zero so optional monetary fields do not need special casing.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// FormatAmount renders an amount with exactly two decimal places, the form
// all monetary values travel in on the wire.
func FormatAmount(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

// InitialMCO derives the amount collected on booking creation:
// total - payableAtPickup, floored at zero.
func InitialMCO(total, payableAtPickup string) (string, error) {
	t, err := ParseAmount(total)
	if err != nil {
		return "", err
	}
	p, err := ParseAmount(payableAtPickup)
	if err != nil {
		return "", err
	}
	mco := t.Sub(p)
	if mco.IsNegative() {
		mco = decimal.Zero
	}
	return FormatAmount(mco), nil
}

// ModifiedMCO derives the amount collected after a modification:
// prior MCO plus the latest appended fee charge.
func ModifiedMCO(priorMCO, charge string) (string, error) {
	prior, err := ParseAmount(priorMCO)
	if err != nil {
		return "", err
	}
	c, err := ParseAmount(charge)
	if err != nil {
		return "", err
	}
	return FormatAmount(prior.Add(c)), nil
}

// ComputeRefund derives the cancellation figures. The cancellation fee
// replaces the booking's MCO outright (it is not additive), and the refund is
// the prior MCO less the fee, floored at zero. A fee exceeding the prior MCO
// silently yields a zero refund rather than an error.
func ComputeRefund(priorMCO, cancellationFee string) (RefundResult, error) {
	prior, err := ParseAmount(priorMCO)
	if err != nil {
		return RefundResult{}, err
	}
	fee, err := ParseAmount(cancellationFee)
	if err != nil {
		return RefundResult{}, err
	}
	refund := prior.Sub(fee)
	if refund.IsNegative() {
		refund = decimal.Zero
	}
	return RefundResult{
		Refund: FormatAmount(refund),
		NewMCO: FormatAmount(fee),
	}, nil
}
