package pricing

import (
	"math"
	"time"
)

// DefaultTaxRate is the GST rate applied to room charges.
const DefaultTaxRate = 0.18

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// DisplayDateLayout is the format used on summaries and confirmations.
const DisplayDateLayout = "02 Jan 2006"

type Totals struct {
	Subtotal int `json:"subtotal"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`
}

// ComputeNights returns the number of nights between two dates in DateLayout
// form. Missing or unparsable dates yield 0; the order of the arguments does
// not matter.
func ComputeNights(checkIn, checkOut string) int {
	if checkIn == "" || checkOut == "" {
		return 0
	}
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 0
	}
	diff := out.Sub(in)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// ComputeTotals derives subtotal, tax and total for a stay. Tax is rounded
// half-up. Zero or negative nights yield zero totals.
func ComputeTotals(pricePerNight, nights int, taxRate float64) Totals {
	if nights <= 0 || pricePerNight <= 0 {
		return Totals{}
	}
	subtotal := pricePerNight * nights
	tax := int(math.Floor(float64(subtotal)*taxRate + 0.5))
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// FormatDisplayDate converts a DateLayout date into its display form.
// Unparsable input is returned unchanged.
func FormatDisplayDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(DisplayDateLayout)
}
