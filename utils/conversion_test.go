package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyHelpers(t *testing.T) {
	assert.Equal(t, 10.13, RoundMoney(10.125000001))
	assert.Equal(t, int64(52500), ToMinorUnits(525))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, 19.99, FromMinorUnits(1999))
	assert.Equal(t, "usd", NormalizeCurrency(" "))
	assert.Equal(t, "eur", NormalizeCurrency("EUR"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(5, 5))
}

func TestNewIDIsPrefixedAndUnique(t *testing.T) {
	a, b := NewID(BookingIDPrefix), NewID(BookingIDPrefix)
	assert.True(t, strings.HasPrefix(a, "booking-"))
	assert.NotEqual(t, a, b)
}
