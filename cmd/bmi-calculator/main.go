package main

import (
	"errors"
	"log"
	"runtime"

	"bmi-calculator/internal/app"
	"bmi-calculator/internal/config"
	"bmi-calculator/internal/logger"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	appLogger := logger.New(logger.ParseLevel(cfg.LogConfig.Level), cfg.LogConfig.JSON)
	if cfgErr != nil {
		appLogger.Warning("Config", "invalid configuration, using defaults", map[string]interface{}{
			"error":          cfgErr.Error(),
			"invalid_height": errors.Is(cfgErr, config.ErrInvalidHeight),
			"invalid_weight": errors.Is(cfgErr, config.ErrInvalidWeight),
		})
	}

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(app.AppID)

	appLogger.Info("Application", "starting application", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogConfig.Level,
	})

	application, err := app.NewApplication(fyneApp, cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()

	log.Println("Application terminated successfully")
}
