package capture

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ConserveLee/gui-cropper/internal/crop"
	"github.com/ConserveLee/gui-cropper/internal/engine/screen"
	"github.com/ConserveLee/gui-cropper/internal/logger"
)

// NewCapturePanel creates the UI panel that screenshots a display and hands
// the capture to onCapture.
func NewCapturePanel(win fyne.Window, appLogger *logger.AppLogger, onCapture func(*crop.Image)) fyne.CanvasObject {
	capturer := screen.NewCapturer()

	// --- UI Components ---

	// 1. Screen Selector
	options := displayOptions(capturer.Displays())
	displaySelect := widget.NewSelect(options, func(selected string) {
		id, err := screen.ParseDisplayLabel(selected)
		if err != nil {
			appLogger.Debug("%v", err)
			id = 0
		}
		capturer.SetDisplayID(id)
		appLogger.Info("Switched to Display %d", id)
	})
	displaySelect.SetSelected(options[0])

	// 2. Info Label
	infoLabel := widget.NewLabel("1. Select a display\n2. Click \"Capture\"\n3. Drag over the capture in the Crop tab")
	infoLabel.Alignment = fyne.TextAlignCenter

	// 3. Action Button
	captureBtn := widget.NewButton("Capture", func() {
		img, err := capturer.Capture()
		if err != nil {
			appLogger.Error("%v", err)
			dialog.ShowError(err, win)
			return
		}
		appLogger.Info("Captured %s at (%d,%d)", img.Meta.Name, img.Origin.X, img.Origin.Y)
		onCapture(img)
	})
	captureBtn.Importance = widget.HighImportance

	// Layout
	return container.NewVBox(
		widget.NewLabel("Screen:"),
		displaySelect,
		widget.NewSeparator(),
		infoLabel,
		widget.NewSeparator(),
		captureBtn,
	)
}

// displayOptions labels the displays, falling back to the main display when
// none are reported.
func displayOptions(displays []screen.Display) []string {
	if len(displays) == 0 {
		return []string{"Display 0 (Default)"}
	}
	options := make([]string, 0, len(displays))
	for _, d := range displays {
		options = append(options, d.Label())
	}
	return options
}
