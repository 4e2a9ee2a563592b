package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bistro/shared/money"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{
			name:   "whole amount",
			amount: 12,
			want:   1200,
		},
		{
			name:   "two decimal places",
			amount: 12.99,
			want:   1299,
		},
		{
			name:   "rounds half up",
			amount: 0.005,
			want:   1,
		},
		{
			name:   "rounds half away from zero for negatives",
			amount: -0.005,
			want:   -1,
		},
		{
			name:   "binary float artifact",
			amount: 19.90,
			want:   1990,
		},
		{
			name:   "zero",
			amount: 0,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.ToCents(tt.amount))
		})
	}
}

func TestFromCents(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  float64
	}{
		{
			name:  "whole amount",
			cents: 1200,
			want:  12,
		},
		{
			name:  "fractional amount",
			cents: 2598,
			want:  25.98,
		},
		{
			name:  "single cent",
			cents: 1,
			want:  0.01,
		},
		{
			name:  "zero",
			cents: 0,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.FromCents(tt.cents))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, amount := range []float64{0.01, 9.99, 19.90, 100, 12345.67} {
		assert.Equal(t, amount, money.FromCents(money.ToCents(amount)))
	}
}
