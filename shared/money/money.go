package money

import "math"

// Amounts are stored as integer cents so cart and order totals stay
// decimal-exact; floats appear only at the JSON boundary.

// ToCents converts a decimal amount to cents, rounding half away from zero.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts cents back to a decimal amount for responses.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
