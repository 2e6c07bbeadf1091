package components

import (
	"bmi-calculator/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// ResultText shows the current BMI in large bold type.
type ResultText struct {
	container *fyne.Container
	text      *canvas.Text
}

func NewResultText() *ResultText {
	rt := &ResultText{}

	rt.text = canvas.NewText("", ColorWhite)
	rt.text.TextSize = ResultTextSize
	rt.text.TextStyle = fyne.TextStyle{Bold: true}
	rt.text.Alignment = fyne.TextAlignCenter

	rt.container = container.NewCenter(rt.text)
	return rt
}

func (rt *ResultText) GetContainer() *fyne.Container {
	return rt.container
}

// Text returns the string currently displayed.
func (rt *ResultText) Text() string {
	return rt.text.Text
}

func (rt *ResultText) Render(state *models.StateStore) {
	text := state.BMIText()
	if rt.text.Text == text {
		return
	}
	rt.text.Text = text
	rt.text.Refresh()
}
