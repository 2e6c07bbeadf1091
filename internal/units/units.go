package units

import (
	"fmt"
	"math"
	"strconv"
)

const (
	CentimetersPerInch = 2.54
	InchesPerFoot      = 12
	PoundsPerKilogram  = 2.20462
	KilogramsPerPound  = 0.453592
	OuncesPerPound     = 16
)

// StepSize selects the coarse or fine weight stepper buttons.
type StepSize int

const (
	Large StepSize = iota
	Small
)

func (s StepSize) String() string {
	if s == Small {
		return "small"
	}
	return "large"
}

// Direction selects whether a weight step adds or removes weight.
type Direction int

const (
	Decrease Direction = iota
	Increase
)

func (d Direction) String() string {
	if d == Increase {
		return "plus"
	}
	return "minus"
}

// Sign returns +1 for Increase and -1 for Decrease.
func (d Direction) Sign() float64 {
	if d == Increase {
		return 1
	}
	return -1
}

// System returns the caption shown on the unit switch.
func System(metric bool) string {
	if metric {
		return "metric"
	}
	return "Imperial"
}

// FormatHeight renders a canonical centimeter height for display.
//
// Metric output splits the decimal digits of cm after the first one, so
// 180 becomes "1.80m". This only reads as meters for three-digit values,
// which the slider domain guarantees.
func FormatHeight(cm int, metric bool) string {
	if metric {
		digits := strconv.Itoa(cm)
		return fmt.Sprintf("%s.%sm", digits[:1], digits[1:])
	}

	feet, inches := divmod(float64(cm)/CentimetersPerInch, InchesPerFoot)
	return fmt.Sprintf("%d'%d\"", int(feet), int(inches))
}

// FormatWeight renders a canonical kilogram weight for display.
func FormatWeight(kg float64, metric bool) string {
	if metric {
		return strconv.FormatFloat(kg, 'f', 1, 64) + "kg"
	}

	pounds, ounces := divmod(kg*PoundsPerKilogram*OuncesPerPound, OuncesPerPound)
	return fmt.Sprintf("%dlb %doz", int(pounds), int(ounces))
}

// WeightStep returns the unsigned kilogram delta of one stepper press.
func WeightStep(metric bool, size StepSize) float64 {
	switch {
	case metric && size == Large:
		return 1
	case metric:
		return 0.1
	case size == Large:
		return KilogramsPerPound
	default:
		return KilogramsPerPound / OuncesPerPound
	}
}

// WeightDelta returns the signed kilogram delta of one stepper press.
func WeightDelta(metric bool, dir Direction, size StepSize) float64 {
	return dir.Sign() * WeightStep(metric, size)
}

func divmod(x, y float64) (float64, float64) {
	q := math.Floor(x / y)
	return q, x - q*y
}
