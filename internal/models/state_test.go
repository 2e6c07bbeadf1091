package models

import (
	"testing"

	"bmi-calculator/internal/config"
	"bmi-calculator/internal/units"

	"github.com/stretchr/testify/assert"
)

func TestDefaultState(t *testing.T) {
	s := NewDefaultStateStore()

	assert.Equal(t, 170, s.Height())
	assert.Equal(t, 65.0, s.Weight())
	assert.True(t, s.Metric())
	assert.Equal(t, 22.49, s.BMI())
	assert.Equal(t, "22.49", s.BMIText())
	assert.Equal(t, "1.70m", s.HeightText())
	assert.Equal(t, "65.0kg", s.WeightText())
	assert.Equal(t, "metric", s.UnitText())
}

func TestSetHeightRecalculatesBMI(t *testing.T) {
	s := NewDefaultStateStore()

	var notified []float64
	s.OnBMIChanged(func(v float64) { notified = append(notified, v) })

	s.SetHeight(180)

	assert.Equal(t, 20.06, s.BMI())
	assert.Equal(t, []float64{20.06}, notified)
}

func TestHeightListenerSeesFreshBMI(t *testing.T) {
	s := NewDefaultStateStore()

	var seen float64
	s.OnHeightChanged(func(int) { seen = s.BMI() })

	s.SetHeight(200)

	assert.Equal(t, 16.25, seen)
}

func TestSetHeightClampsToSlider(t *testing.T) {
	s := NewDefaultStateStore()

	s.SetHeight(90)
	assert.Equal(t, config.MinHeight, s.Height())

	s.SetHeight(300)
	assert.Equal(t, config.MaxHeight, s.Height())

	clamped := NewStateStore(config.InitialState{Height: 20, Weight: 65, Metric: true})
	assert.Equal(t, config.MinHeight, clamped.Height())
}

func TestToggleUnitsKeepsCanonicalValues(t *testing.T) {
	s := NewDefaultStateStore()
	s.SetHeight(180)

	heightText, weightText := s.HeightText(), s.WeightText()

	s.ToggleUnits()
	assert.False(t, s.Metric())
	assert.Equal(t, 180, s.Height())
	assert.Equal(t, 65.0, s.Weight())
	assert.Equal(t, "5'10\"", s.HeightText())
	assert.Equal(t, "143lb 4oz", s.WeightText())
	assert.Equal(t, "Imperial", s.UnitText())

	s.ToggleUnits()
	assert.Equal(t, heightText, s.HeightText())
	assert.Equal(t, weightText, s.WeightText())
}

func TestToggleUnitsNotifiesListeners(t *testing.T) {
	s := NewDefaultStateStore()

	var flags []bool
	s.OnMetricChanged(func(metric bool) { flags = append(flags, metric) })

	s.ToggleUnits()
	s.ToggleUnits()
	s.SetMetric(true)

	assert.Equal(t, []bool{false, true}, flags)
}

func TestStepWeightRoundTrip(t *testing.T) {
	for _, metric := range []bool{true, false} {
		s := NewDefaultStateStore()
		s.SetMetric(metric)

		s.StepWeight(units.Increase, units.Large)
		s.StepWeight(units.Decrease, units.Large)

		assert.InDelta(t, 65.0, s.Weight(), 1e-9, "metric=%v", metric)
	}
}

func TestStepWeightMetricSmall(t *testing.T) {
	s := NewDefaultStateStore()

	assert.True(t, s.StepWeight(units.Decrease, units.Small))
	assert.Equal(t, "64.9kg", s.WeightText())
	assert.Equal(t, 22.46, s.BMI())
}

func TestStepWeightImperial(t *testing.T) {
	s := NewDefaultStateStore()
	s.ToggleUnits()

	s.StepWeight(units.Increase, units.Large)
	assert.InDelta(t, 65.453592, s.Weight(), 1e-9)
	assert.Equal(t, "144lb 4oz", s.WeightText())

	s.StepWeight(units.Decrease, units.Small)
	assert.Equal(t, "144lb 3oz", s.WeightText())
}

func TestStepWeightRefusesNonPositive(t *testing.T) {
	s := NewStateStore(config.InitialState{Height: 170, Weight: 0.5, Metric: true})

	assert.False(t, s.StepWeight(units.Decrease, units.Large))
	assert.Equal(t, 0.5, s.Weight())
}

func TestSteppedWeightRoundsLikeLabel(t *testing.T) {
	s := NewStateStore(config.InitialState{Height: 200, Weight: 65, Metric: true})

	for i := 0; i < 5; i++ {
		s.StepWeight(units.Decrease, units.Large)
	}
	s.StepWeight(units.Decrease, units.Small)

	assert.Equal(t, "59.9kg", s.WeightText())
	assert.Equal(t, 14.97, s.BMI())
	assert.Equal(t, "14.97", s.BMIText())
}

func TestWholeBMIKeepsDecimal(t *testing.T) {
	s := NewStateStore(config.InitialState{Height: 200, Weight: 65, Metric: true})

	for i := 0; i < 15; i++ {
		s.StepWeight(units.Increase, units.Large)
	}

	assert.Equal(t, "80.0kg", s.WeightText())
	assert.Equal(t, "20.0", s.BMIText())
}
