package utils

import (
	"math"
	"strings"
)

// RoundMoney rounds to whole cents.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ToMinorUnits converts an amount to the integer minor unit the gateway expects (cents for usd).
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// NormalizeCurrency lowercases an ISO code, defaulting to usd.
func NormalizeCurrency(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "usd"
	}
	return code
}

// Percent returns round(part/total*100), or 0 when total is 0.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
