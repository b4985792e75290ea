package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxValue(t *testing.T) {
	assert.InDelta(t, 17.355371900826, TaxValue(100), 1e-9)
	assert.Equal(t, 0.0, TaxValue(0))
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		value  float64
		places int32
		want   string
	}{
		{17.355371900826446, 2, "17.36"},
		{17.355371900826446, 1, "17.4"},
		{0.25, 1, "0.3"},
		{0.15, 1, "0.2"},
		{40, 1, "40.0"},
		{2.0999999999999979, 2, "2.10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFixed(tt.value, tt.places))
	}
}

func TestBillableImplementations(t *testing.T) {
	var _ Billable = (*Order)(nil)
	var _ Billable = (*OrderItem)(nil)
}
