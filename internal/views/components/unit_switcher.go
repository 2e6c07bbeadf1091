package components

import (
	"bmi-calculator/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// UnitSwitcher is the caption in the top-right corner that flips between
// metric and imperial display when tapped.
type UnitSwitcher struct {
	container *fyne.Container
	button    *widget.Button

	toggleHandler func()
}

func NewUnitSwitcher() *UnitSwitcher {
	us := &UnitSwitcher{}

	us.button = widget.NewButton("", func() {
		if us.toggleHandler != nil {
			us.toggleHandler()
		}
	})
	us.button.Importance = widget.LowImportance

	us.container = container.NewVBox(
		container.NewHBox(layout.NewSpacer(), us.button),
	)
	return us
}

func (us *UnitSwitcher) GetContainer() *fyne.Container {
	return us.container
}

// SetToggleHandler sets the handler for unit switch taps
func (us *UnitSwitcher) SetToggleHandler(handler func()) {
	us.toggleHandler = handler
}

// Text returns the caption currently displayed.
func (us *UnitSwitcher) Text() string {
	return us.button.Text
}

func (us *UnitSwitcher) Render(state *models.StateStore) {
	if text := state.UnitText(); us.button.Text != text {
		us.button.SetText(text)
	}
}
