package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	dec := decimal.RequireFromString

	t.Run("Hours Times Rate Plus Travel", func(t *testing.T) {
		total := ComputeTotal(dec("8"), dec("25"), dec("10"))
		assert.True(t, total.Equal(dec("210")))
	})

	t.Run("Fractional Hours Are Exact", func(t *testing.T) {
		total := ComputeTotal(dec("7.5"), dec("24.30"), dec("0"))
		assert.True(t, total.Equal(dec("182.25")))
	})

	t.Run("Zero Travel Cost", func(t *testing.T) {
		total := ComputeTotal(dec("1"), dec("19.99"), dec("0"))
		assert.True(t, total.Equal(dec("19.99")))
	})
}

func TestShiftStatusCanAdvanceTo(t *testing.T) {
	cases := []struct {
		from ShiftStatus
		to   ShiftStatus
		ok   bool
	}{
		{ShiftPending, ShiftValidated, true},
		{ShiftValidated, ShiftPaid, true},
		{ShiftPending, ShiftPaid, false},
		{ShiftValidated, ShiftPending, false},
		{ShiftPaid, ShiftValidated, false},
		{ShiftPaid, ShiftPending, false},
		{ShiftPending, ShiftPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanAdvanceTo(tc.to), "%s to %s", tc.from, tc.to)
	}
}
