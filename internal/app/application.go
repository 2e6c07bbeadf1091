package app

import (
	"runtime"

	"bmi-calculator/internal/config"
	"bmi-calculator/internal/controllers"
	"bmi-calculator/internal/logger"
	"bmi-calculator/internal/models"
	"bmi-calculator/internal/shutdown"
	"bmi-calculator/internal/views"

	"fyne.io/fyne/v2"
)

const (
	AppName      = "BMI Calculator"
	AppID        = "com.example.bmi-calculator"
	AppVersion   = "1.0.0"
	WindowWidth  = 400
	WindowHeight = 400
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	store      *models.StateStore
	view       *views.MainView
	controller *controllers.MainController
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

// NewApplication builds the window, state and controller on fyneApp.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()
	applyTitleBarColor(window, log)

	store := models.NewStateStore(cfg.InitialState)
	view := views.NewMainView(window)
	controller := controllers.NewMainController(store, log)
	controller.SetMainView(view)

	manager := shutdown.NewManager(log)
	manager.Register(controller)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":   AppVersion,
		"height_cm": store.Height(),
		"weight_kg": store.Weight(),
		"system":    store.UnitText(),
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		store:      store,
		view:       view,
		controller: controller,
		shutdown:   manager,
		logger:     log,
	}, nil
}

// Run shows the window and blocks until the application exits.
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.Shutdown()
		a.window.Close()
	})

	a.logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()
}

func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

func (a *Application) Window() fyne.Window       { return a.window }
func (a *Application) View() *views.MainView     { return a.view }
func (a *Application) Store() *models.StateStore { return a.store }

// applyTitleBarColor would tint the native title bar on Windows. fyne has
// no API for it, so the request is logged and skipped on every platform.
func applyTitleBarColor(window fyne.Window, log logger.Logger) {
	log.Debug("Application", "title bar theming unsupported, skipped", map[string]interface{}{
		"os":     runtime.GOOS,
		"window": window.Title(),
	})
}
