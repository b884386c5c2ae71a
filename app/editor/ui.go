package editor

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ConserveLee/gui-cropper/internal/config"
	"github.com/ConserveLee/gui-cropper/internal/crop"
	"github.com/ConserveLee/gui-cropper/internal/engine/preview"
	"github.com/ConserveLee/gui-cropper/internal/engine/source"
	"github.com/ConserveLee/gui-cropper/internal/logger"
)

// Editor is the crop panel: image area, coordinate fields, preview and the
// applied result. All of its methods run on the UI goroutine.
type Editor struct {
	win       fyne.Window
	cfg       *config.Config
	appLogger *logger.AppLogger

	state    *crop.State
	loader   *source.Loader
	renderer *preview.Renderer

	// UI Elements
	cropper    *CropperWidget
	fields     *coordFields
	previewImg *canvas.Image
	infoData   binding.String
	outputData binding.String
	applyBtn   *widget.Button
	content    fyne.CanvasObject

	unsubscribe func()
}

// NewEditor creates the crop panel for win.
func NewEditor(win fyne.Window, cfg *config.Config, appLogger *logger.AppLogger) *Editor {
	e := &Editor{
		win:        win,
		cfg:        cfg,
		appLogger:  appLogger,
		state:      crop.NewState(),
		renderer:   preview.New(cfg.Preview.Size),
		infoData:   binding.NewString(),
		outputData: binding.NewString(),
	}
	_ = e.infoData.Set("No image loaded")

	e.loader = source.NewLoader(cfg.Loader.AllowedTypes, fyne.Do, e.state.Load, e.loadFailed)
	e.loader.DebugFunc = appLogger.Debug

	e.cropper = NewCropperWidget(e.state)
	e.fields = newCoordFields(e.state.SetField)

	e.previewImg = canvas.NewImageFromImage(e.renderer.Buffer())
	e.previewImg.FillMode = canvas.ImageFillOriginal
	e.previewImg.ScaleMode = canvas.ImageScalePixels
	size := float32(cfg.Preview.Size)
	e.previewImg.SetMinSize(fyne.NewSize(size, size))

	e.applyBtn = widget.NewButton("Apply Crop", e.Apply)
	e.applyBtn.Importance = widget.HighImportance

	e.unsubscribe = e.state.Subscribe(e.onChange)
	e.content = e.buildLayout()
	return e
}

// Content returns the panel's root object.
func (e *Editor) Content() fyne.CanvasObject {
	return e.content
}

// State exposes the crop controller.
func (e *Editor) State() *crop.State {
	return e.state
}

// OpenFile shows the file picker; the chosen file is decoded in the background.
func (e *Editor) OpenFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, e.win)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			e.loadFailed(reader.URI().Name(), fmt.Errorf("failed to read file: %w", err))
			return
		}
		e.LoadBytes(data, reader.URI().Name(), reader.URI().MimeType())
	}, e.win)
	d.SetFilter(storage.NewExtensionFileFilter(e.cfg.Loader.AllowedExtensions))
	d.Show()
}

// LoadBytes decodes an encoded image and loads it when decoding finishes.
// Only the most recent request is loaded.
func (e *Editor) LoadBytes(data []byte, name, mimeType string) {
	if gen := e.loader.Load(data, name, mimeType); gen != 0 {
		e.appLogger.Debug("Decoding %s (%d bytes, request %d)", name, len(data), gen)
	}
}

// LoadImage loads an already decoded image, superseding any pending decode.
func (e *Editor) LoadImage(img *crop.Image) {
	e.loader.Deliver(img)
}

// Apply records the current rectangle, in displayed-image pixels, as the result.
func (e *Editor) Apply() {
	if _, ok := e.state.Apply(); !ok {
		e.appLogger.Debug("Apply ignored: no image or empty selection")
	}
}

// Close detaches the panel from its state.
func (e *Editor) Close() {
	e.unsubscribe()
	e.state.Close()
}

func (e *Editor) loadFailed(name string, err error) {
	e.appLogger.Error("Failed to load %s: %v", name, err)
	dialog.ShowError(err, e.win)
}

func (e *Editor) onChange(snap crop.Snapshot) {
	switch snap.Change {
	case crop.ChangeLoad:
		_ = e.infoData.Set(describe(snap.Image))
		_ = e.outputData.Set("")
		e.cropper.SetImage(snap.Image.Source)
		e.fields.sync(snap.Rect)
		e.appLogger.Info("Loaded %s", describe(snap.Image))
	case crop.ChangeRect:
		e.fields.sync(snap.Rect)
		e.cropper.Refresh()
		e.renderPreview(snap)
	case crop.ChangeResult:
		_ = e.outputData.Set(snap.Result.String())
		e.appLogger.Record("Crop applied", snap.Result.Compact(), zap.Object("result", *snap.Result))
	}
}

// describe is the info line for img; captures also show where the display sits.
func describe(img *crop.Image) string {
	meta := img.Meta
	info := fmt.Sprintf("%s (%dx%d, %s)", meta.Name, meta.NaturalWidth, meta.NaturalHeight, meta.MimeType)
	if img.Origin != nil {
		info += fmt.Sprintf(" at (%d,%d)", img.Origin.X, img.Origin.Y)
	}
	return info
}

func (e *Editor) renderPreview(snap crop.Snapshot) {
	if e.renderer.Render(snap.Image, snap.Rect, e.cropper.DisplayedSize()) {
		e.previewImg.Refresh()
	}
}

func (e *Editor) buildLayout() fyne.CanvasObject {
	openBtn := widget.NewButton("Open Image...", e.OpenFile)

	infoLabel := widget.NewLabelWithData(e.infoData)
	infoLabel.Truncation = fyne.TextTruncateEllipsis

	header := container.NewBorder(nil, nil, openBtn, nil, infoLabel)

	controls := container.NewVBox(
		widget.NewLabelWithStyle("Coordinates", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		e.fields.layout(),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Preview", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewCenter(e.previewImg),
		e.applyBtn,
	)

	output := widget.NewLabelWithData(e.outputData)
	output.TextStyle = fyne.TextStyle{Monospace: true}
	outputBox := container.NewVBox(
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Console Output", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		output,
	)

	hint := widget.NewLabel("Drag on the image to select a region, or type the coordinates.")
	hint.Alignment = fyne.TextAlignCenter

	imageArea := container.NewBorder(nil, hint, nil, nil, e.cropper)

	return container.NewBorder(header, outputBox, nil, controls, imageArea)
}
