package views

import (
	"bmi-calculator/internal/models"
	"bmi-calculator/internal/units"
	"bmi-calculator/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// View is anything that draws itself from the shared state.
type View interface {
	Render(state *models.StateStore)
}

// MainView composes the four widgets of the calculator window
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	result       *components.ResultText
	weightInput  *components.WeightInput
	heightInput  *components.HeightInput
	unitSwitcher *components.UnitSwitcher
}

// NewMainView creates the view and sets it as the window content
func NewMainView(window fyne.Window) *MainView {
	mv := &MainView{
		window: window,
	}

	mv.initializeComponents()
	mv.buildLayout()

	return mv
}

func (mv *MainView) initializeComponents() {
	mv.result = components.NewResultText()
	mv.weightInput = components.NewWeightInput()
	mv.heightInput = components.NewHeightInput()
	mv.unitSwitcher = components.NewUnitSwitcher()
}

// buildLayout stacks the result over two rows of inputs on a green
// background, with the unit switch floating in the top-right corner.
func (mv *MainView) buildLayout() {
	rows := container.NewGridWithRows(2,
		mv.result.GetContainer(),
		container.NewGridWithRows(2,
			container.NewPadded(mv.weightInput.GetContainer()),
			container.NewPadded(mv.heightInput.GetContainer()),
		),
	)

	mv.mainContainer = container.NewStack(
		canvas.NewRectangle(components.ColorGreen),
		rows,
		mv.unitSwitcher.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters - called by controller

// SetHeightChangeHandler sets the handler for slider drags
func (mv *MainView) SetHeightChangeHandler(handler func(int)) {
	mv.heightInput.SetHeightChangeHandler(handler)
}

// SetWeightStepHandler sets the handler for stepper presses
func (mv *MainView) SetWeightStepHandler(handler func(units.Direction, units.StepSize)) {
	mv.weightInput.SetStepHandler(handler)
}

// SetUnitToggleHandler sets the handler for unit switch taps
func (mv *MainView) SetUnitToggleHandler(handler func()) {
	mv.unitSwitcher.SetToggleHandler(handler)
}

func (mv *MainView) Result() *components.ResultText         { return mv.result }
func (mv *MainView) WeightInput() *components.WeightInput   { return mv.weightInput }
func (mv *MainView) HeightInput() *components.HeightInput   { return mv.heightInput }
func (mv *MainView) UnitSwitcher() *components.UnitSwitcher { return mv.unitSwitcher }

// Render redraws every widget.
func (mv *MainView) Render(state *models.StateStore) {
	for _, v := range []View{mv.result, mv.weightInput, mv.heightInput, mv.unitSwitcher} {
		v.Render(state)
	}
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
