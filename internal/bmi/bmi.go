package bmi

import (
	"strconv"
	"strings"
)

// Calculate returns weightKG / (heightCM/100)^2 rounded to two decimals.
// heightCM is expected to lie in the slider domain, so it is never zero.
func Calculate(heightCM int, weightKG float64) float64 {
	meters := float64(heightCM) / 100
	return Round(weightKG/(meters*meters), 2)
}

// Round rounds the exact binary value of v to the given number of
// decimals, sending exact ties to the even digit.
func Round(v float64, decimals int) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	return rounded
}

// Format renders a BMI value in its shortest decimal form, keeping one
// fractional digit for whole numbers: "22.49", "22.5", "20.0".
func Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
