package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/domain"
)

func TestValidAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount   float64
		expected bool
	}{
		{0, true},
		{250.5, true},
		{-40, true},
		{9_999_999_999.99, true},
		{-9_999_999_999.99, true},
		{9_999_999_999.994, true},
		{9_999_999_999.996, false},
		{1e10, false},
		{-1e10, false},
		{math.MaxFloat64, false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, domain.ValidAmount(tt.amount), tt.amount)
	}
}
