package models

import (
	"bmi-calculator/internal/bmi"
	"bmi-calculator/internal/config"
	"bmi-calculator/internal/observable"
	"bmi-calculator/internal/units"
)

// StateStore holds the canonical height and weight, the unit flag and the
// BMI derived from them. Height is always centimeters and weight always
// kilograms; the unit flag only changes how they are presented.
type StateStore struct {
	height *observable.Cell[int]
	weight *observable.Cell[float64]
	metric *observable.Cell[bool]
	bmi    *observable.Cell[float64]
}

// NewStateStore creates a store from the initial state. Height is clamped
// to the slider domain.
func NewStateStore(initial config.InitialState) *StateStore {
	height := clampHeight(initial.Height)

	s := &StateStore{
		height: observable.NewCell(height),
		weight: observable.NewCell(initial.Weight),
		metric: observable.NewCell(initial.Metric),
		bmi:    observable.NewCell(bmi.Calculate(height, initial.Weight)),
	}

	// Registered before any view so BMI is never stale when they render.
	s.height.Subscribe(func(int) { s.recalculate() })
	s.weight.Subscribe(func(float64) { s.recalculate() })

	return s
}

// NewDefaultStateStore creates a store at 170cm, 65kg, metric.
func NewDefaultStateStore() *StateStore {
	return NewStateStore(config.Default().InitialState)
}

func (s *StateStore) recalculate() {
	s.bmi.Set(bmi.Calculate(s.height.Get(), s.weight.Get()))
}

func (s *StateStore) Height() int     { return s.height.Get() }
func (s *StateStore) Weight() float64 { return s.weight.Get() }
func (s *StateStore) Metric() bool    { return s.metric.Get() }
func (s *StateStore) BMI() float64    { return s.bmi.Get() }

// HeightText is the height as shown in the active unit system.
func (s *StateStore) HeightText() string {
	return units.FormatHeight(s.Height(), s.Metric())
}

// WeightText is the weight as shown in the active unit system.
func (s *StateStore) WeightText() string {
	return units.FormatWeight(s.Weight(), s.Metric())
}

func (s *StateStore) BMIText() string {
	return bmi.Format(s.BMI())
}

func (s *StateStore) UnitText() string {
	return units.System(s.Metric())
}

// SetHeight stores a height in centimeters, clamped to [100, 250].
func (s *StateStore) SetHeight(cm int) {
	s.height.Set(clampHeight(cm))
}

// StepWeight moves the weight by one stepper press in the active unit
// system. A step that would leave the weight at or below zero is ignored.
// It reports whether the weight changed.
func (s *StateStore) StepWeight(dir units.Direction, size units.StepSize) bool {
	next := s.Weight() + units.WeightDelta(s.Metric(), dir, size)
	if next <= 0 {
		return false
	}
	s.weight.Set(next)
	return true
}

// ToggleUnits flips between metric and imperial presentation.
func (s *StateStore) ToggleUnits() {
	s.metric.Update(func(metric bool) bool { return !metric })
}

func (s *StateStore) SetMetric(metric bool) {
	s.metric.Set(metric)
}

func (s *StateStore) OnHeightChanged(fn func(int)) func() {
	return s.height.Subscribe(fn)
}

func (s *StateStore) OnWeightChanged(fn func(float64)) func() {
	return s.weight.Subscribe(fn)
}

func (s *StateStore) OnMetricChanged(fn func(bool)) func() {
	return s.metric.Subscribe(fn)
}

func (s *StateStore) OnBMIChanged(fn func(float64)) func() {
	return s.bmi.Subscribe(fn)
}

func clampHeight(cm int) int {
	switch {
	case cm < config.MinHeight:
		return config.MinHeight
	case cm > config.MaxHeight:
		return config.MaxHeight
	default:
		return cm
	}
}
