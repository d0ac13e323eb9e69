// Package pricing implements the quotation pricing formulas. Every function is
// pure: amounts arrive as free-form user input, invalid values normalize to zero
// and nothing here ever returns an error.
package pricing

import (
	"encoding/json"
	"strconv"
	"strings"
)

// IGVRate is the fixed Peruvian sales tax rate applied to every computation.
const IGVRate = 0.18

// Amount is a monetary input field as the form sends it. Older payloads stored
// numbers, newer ones strings, so it unmarshals from either. Empty strings and
// garbage parse to zero rather than failing.
type Amount string

// Float returns the numeric value of the amount, zero when empty or unparseable.
func (a Amount) Float() float64 {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// LineItemTotals holds the derived fields of a proposal item.
type LineItemTotals struct {
	Subtotal float64 `json:"subtotal"`
	IGV      float64 `json:"igv"`
	Total    float64 `json:"total"`
}

// ServiceTotals holds the derived fields of an additional service.
type ServiceTotals struct {
	IGV   float64 `json:"igv"`
	Total float64 `json:"total"`
}

// ComputeLineItem derives subtotal, IGV and total for a proposal item.
// A discount larger than the amount yields negative values on purpose: the
// business has not decided whether that is an error, so it propagates as-is.
func ComputeLineItem(amount, discount Amount) LineItemTotals {
	subtotal := amount.Float() - discount.Float()
	igv := subtotal * IGVRate
	return LineItemTotals{
		Subtotal: subtotal,
		IGV:      igv,
		Total:    subtotal + igv,
	}
}

// ComputeAdditionalService derives IGV and total for an additional service,
// which has no discount field.
func ComputeAdditionalService(amount Amount) ServiceTotals {
	igv := amount.Float() * IGVRate
	return ServiceTotals{
		IGV:   igv,
		Total: amount.Float() + igv,
	}
}

// Totaler is anything carrying an already-computed total, so Aggregate can sum
// proposal items and additional services without knowing their shapes.
type Totaler interface {
	TotalValue() float64
}

// Summary aggregates the grand totals of a quotation.
type Summary struct {
	ItemsTotal    float64 `json:"items_total"`
	ServicesTotal float64 `json:"services_total"`
	GrandTotal    float64 `json:"grand_total"`
}

// Aggregate sums the totals of both collections. The grand total is plain
// addition; IGV was already applied per line and is not charged again.
func Aggregate[I Totaler, S Totaler](items []I, services []S) Summary {
	var sum Summary
	for _, it := range items {
		sum.ItemsTotal += it.TotalValue()
	}
	for _, sv := range services {
		sum.ServicesTotal += sv.TotalValue()
	}
	sum.GrandTotal = sum.ItemsTotal + sum.ServicesTotal
	return sum
}

// FormatAmount renders a monetary value for display, fixed to two decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
