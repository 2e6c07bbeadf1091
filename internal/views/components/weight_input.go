package components

import (
	"image/color"

	"bmi-calculator/internal/models"
	"bmi-calculator/internal/units"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// WeightInput is the weight stepper: coarse and fine buttons on each side
// of the weight read-out.
type WeightInput struct {
	container *fyne.Container
	output    *canvas.Text

	minusLarge *widget.Button
	minusSmall *widget.Button
	plusSmall  *widget.Button
	plusLarge  *widget.Button

	stepHandler func(units.Direction, units.StepSize)
}

func NewWeightInput() *WeightInput {
	wi := &WeightInput{}
	wi.createComponents()
	wi.buildLayout()
	return wi
}

func (wi *WeightInput) createComponents() {
	wi.output = canvas.NewText("", ColorBlack)
	wi.output.TextSize = InputTextSize
	wi.output.Alignment = fyne.TextAlignCenter

	wi.minusLarge = wi.newStepButton("-", units.Decrease, units.Large)
	wi.minusSmall = wi.newStepButton("-", units.Decrease, units.Small)
	wi.plusSmall = wi.newStepButton("+", units.Increase, units.Small)
	wi.plusLarge = wi.newStepButton("+", units.Increase, units.Large)
}

func (wi *WeightInput) newStepButton(label string, dir units.Direction, size units.StepSize) *widget.Button {
	button := widget.NewButton(label, func() {
		if wi.stepHandler != nil {
			wi.stepHandler(dir, size)
		}
	})
	if size == units.Large {
		button.Importance = widget.MediumImportance
	} else {
		button.Importance = widget.LowImportance
	}
	return button
}

func (wi *WeightInput) buildLayout() {
	background := canvas.NewRectangle(color.White)
	background.CornerRadius = 8

	wi.container = container.NewStack(
		background,
		container.NewPadded(container.NewBorder(
			nil, nil,
			container.NewHBox(wi.minusLarge, wi.minusSmall),
			container.NewHBox(wi.plusSmall, wi.plusLarge),
			container.NewCenter(wi.output),
		)),
	)
}

func (wi *WeightInput) GetContainer() *fyne.Container {
	return wi.container
}

// SetStepHandler sets the handler for stepper presses
func (wi *WeightInput) SetStepHandler(handler func(units.Direction, units.StepSize)) {
	wi.stepHandler = handler
}

// Text returns the weight string currently displayed.
func (wi *WeightInput) Text() string {
	return wi.output.Text
}

func (wi *WeightInput) Render(state *models.StateStore) {
	text := state.WeightText()
	if wi.output.Text == text {
		return
	}
	wi.output.Text = text
	wi.output.Refresh()
}
