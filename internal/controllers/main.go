package controllers

import (
	"sync"

	"bmi-calculator/internal/logger"
	"bmi-calculator/internal/models"
	"bmi-calculator/internal/units"
	"bmi-calculator/internal/views"
)

const component = "MainController"

// MainController binds the state store to the main view: user input
// becomes store mutations, and store changes become re-renders.
type MainController struct {
	store  *models.StateStore
	logger logger.Logger

	mainView *views.MainView

	mu           sync.Mutex
	unsubscribes []func()
}

// NewMainController creates a new main controller
func NewMainController(store *models.StateStore, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		store:  store,
		logger: log,
	}
}

// SetMainView associates the main view with this controller and renders
// the current state into it.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
	mc.bindState()
	view.Render(mc.store)
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetHeightChangeHandler(mc.HandleHeightChange)
	mc.mainView.SetWeightStepHandler(mc.HandleWeightStep)
	mc.mainView.SetUnitToggleHandler(mc.HandleUnitToggle)
}

// bindState subscribes each widget to the values it displays.
func (mc *MainController) bindState() {
	mv := mc.mainView

	mc.track(
		mc.store.OnBMIChanged(func(float64) {
			mv.Result().Render(mc.store)
		}),
		mc.store.OnHeightChanged(func(int) {
			mv.HeightInput().Render(mc.store)
		}),
		mc.store.OnWeightChanged(func(float64) {
			mv.WeightInput().Render(mc.store)
		}),
		mc.store.OnMetricChanged(func(bool) {
			mv.HeightInput().Render(mc.store)
			mv.WeightInput().Render(mc.store)
			mv.UnitSwitcher().Render(mc.store)
		}),
	)
}

func (mc *MainController) track(unsubscribes ...func()) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.unsubscribes = append(mc.unsubscribes, unsubscribes...)
}

// HandleHeightChange handles slider drags
func (mc *MainController) HandleHeightChange(cm int) {
	if cm == mc.store.Height() {
		return
	}
	mc.store.SetHeight(cm)

	mc.logger.Debug(component, "height changed", map[string]interface{}{
		"height_cm": mc.store.Height(),
		"bmi":       mc.store.BMI(),
	})
}

// HandleWeightStep handles stepper presses
func (mc *MainController) HandleWeightStep(dir units.Direction, size units.StepSize) {
	if !mc.store.StepWeight(dir, size) {
		mc.logger.Debug(component, "weight step ignored", map[string]interface{}{
			"direction": dir.String(),
			"size":      size.String(),
			"weight_kg": mc.store.Weight(),
		})
		return
	}

	mc.logger.Debug(component, "weight changed", map[string]interface{}{
		"direction": dir.String(),
		"size":      size.String(),
		"weight_kg": mc.store.Weight(),
		"bmi":       mc.store.BMI(),
	})
}

// HandleUnitToggle handles taps on the unit switch
func (mc *MainController) HandleUnitToggle() {
	mc.store.ToggleUnits()

	mc.logger.Debug(component, "units toggled", map[string]interface{}{
		"system": mc.store.UnitText(),
	})
}

// Shutdown detaches the view from the store.
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	unsubscribes := mc.unsubscribes
	mc.unsubscribes = nil
	mc.mu.Unlock()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}

	mc.logger.Info(component, "controller shutdown completed", map[string]interface{}{
		"listeners_removed": len(unsubscribes),
	})
}
