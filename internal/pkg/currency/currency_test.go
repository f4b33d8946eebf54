package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "₹1,234.50", Format(1234.5))
	assert.Equal(t, "₹0.00", Format(0))
	assert.Equal(t, "₹58.31", Format(58.31))
}

func TestFormat_IndianGrouping(t *testing.T) {
	// en-IN groups by lakh/crore above a thousand.
	assert.Equal(t, "₹1,23,456.78", Format(123456.78))
}

func TestFormat_Deterministic(t *testing.T) {
	// Re-formatting the same numeric value must not drift.
	assert.Equal(t, Format(1812.5), Format(1812.5))
}
