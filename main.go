package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"

	"github.com/ConserveLee/gui-cropper/app/capture"
	"github.com/ConserveLee/gui-cropper/app/editor"
	"github.com/ConserveLee/gui-cropper/app/logview"
	"github.com/ConserveLee/gui-cropper/internal/config"
	"github.com/ConserveLee/gui-cropper/internal/crop"
	"github.com/ConserveLee/gui-cropper/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	z, err := logger.NewZap(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logData := binding.NewStringList()
	appLogger := logger.NewAppLogger(logData, z, cfg.Log.MaxLines)
	defer appLogger.Sync()

	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	cropEditor := editor.NewEditor(myWindow, cfg, appLogger)
	editorTab := container.NewTabItem("Crop", cropEditor.Content())

	// Create tabs for different features
	tabs := container.NewAppTabs(editorTab)
	tabs.Append(container.NewTabItem("Capture", capture.NewCapturePanel(myWindow, appLogger, func(img *crop.Image) {
		cropEditor.LoadImage(img)
		tabs.Select(editorTab)
	})))
	tabs.Append(container.NewTabItem("Log", logview.NewLogPanel(logData)))

	tabs.SetTabLocation(container.TabLocationTop)

	myWindow.SetOnClosed(cropEditor.Close)
	myWindow.SetContent(tabs)

	appLogger.Info("Ready")
	myWindow.ShowAndRun()
}
