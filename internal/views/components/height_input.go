package components

import (
	"image/color"
	"math"

	"bmi-calculator/internal/config"
	"bmi-calculator/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// HeightInput is the height slider with its read-out.
type HeightInput struct {
	container *fyne.Container
	slider    *widget.Slider
	output    *canvas.Text

	heightChangeHandler func(int)
}

func NewHeightInput() *HeightInput {
	hi := &HeightInput{}

	hi.slider = widget.NewSlider(config.MinHeight, config.MaxHeight)
	hi.slider.Step = 1
	hi.slider.OnChanged = func(value float64) {
		if hi.heightChangeHandler != nil {
			hi.heightChangeHandler(int(math.Round(value)))
		}
	}

	hi.output = canvas.NewText("", ColorBlack)
	hi.output.TextSize = InputTextSize

	background := canvas.NewRectangle(color.White)
	background.CornerRadius = 8

	hi.container = container.NewStack(
		background,
		container.NewPadded(container.NewBorder(nil, nil, nil, hi.output, hi.slider)),
	)
	return hi
}

func (hi *HeightInput) GetContainer() *fyne.Container {
	return hi.container
}

// SetHeightChangeHandler sets the handler for slider drags
func (hi *HeightInput) SetHeightChangeHandler(handler func(int)) {
	hi.heightChangeHandler = handler
}

// Text returns the height string currently displayed.
func (hi *HeightInput) Text() string {
	return hi.output.Text
}

// Value returns the slider position in centimeters.
func (hi *HeightInput) Value() int {
	return int(math.Round(hi.slider.Value))
}

func (hi *HeightInput) Render(state *models.StateStore) {
	if height := float64(state.Height()); hi.slider.Value != height {
		hi.slider.SetValue(height)
	}

	text := state.HeightText()
	if hi.output.Text == text {
		return
	}
	hi.output.Text = text
	hi.output.Refresh()
}
