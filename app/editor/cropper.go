package editor

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ConserveLee/gui-cropper/internal/constants"
	"github.com/ConserveLee/gui-cropper/internal/crop"
)

// CropperWidget displays the loaded image and turns mouse gestures into crop
// state updates. Widget positions are translated to image-relative displayed
// pixels before they reach the state.
type CropperWidget struct {
	widget.BaseWidget

	state *crop.State

	// UI Elements
	raster    *canvas.Image
	selection *canvas.Rectangle
}

// frame is where the image is drawn inside the widget.
type frame struct {
	origin fyne.Position
	size   fyne.Size
}

func NewCropperWidget(state *crop.State) *CropperWidget {
	c := &CropperWidget{state: state}
	c.ExtendBaseWidget(c)

	c.raster = canvas.NewImageFromImage(nil)
	c.raster.ScaleMode = canvas.ImageScaleSmooth
	c.raster.FillMode = canvas.ImageFillContain

	c.selection = canvas.NewRectangle(color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 40})
	c.selection.StrokeColor = color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	c.selection.StrokeWidth = constants.SelectionStrokePx
	c.selection.Hide()

	return c
}

// SetImage swaps the displayed image.
func (c *CropperWidget) SetImage(img image.Image) {
	c.raster.Image = img
	c.raster.Refresh()
	c.Refresh()
}

func (c *CropperWidget) CreateRenderer() fyne.WidgetRenderer {
	return &cropperRenderer{
		cropper: c,
		objects: []fyne.CanvasObject{c.raster, c.selection},
	}
}

// DisplayedSize is the on-screen size of the image, zero until laid out.
func (c *CropperWidget) DisplayedSize() crop.Size {
	f := c.imageFrame()
	return crop.Size{Width: float64(f.size.Width), Height: float64(f.size.Height)}
}

// Mouse events

func (c *CropperWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !c.state.Loaded() {
		return
	}
	p, ok := c.toImageSpace(e.Position)
	if !ok {
		return
	}
	c.state.BeginDrag(p)
}

func (c *CropperWidget) MouseUp(*desktop.MouseEvent) {
	c.state.EndDrag()
}

func (c *CropperWidget) Dragged(e *fyne.DragEvent) {
	c.moveTo(e.Position)
}

func (c *CropperWidget) DragEnd() {
	c.state.EndDrag()
}

func (c *CropperWidget) MouseIn(*desktop.MouseEvent) {}

func (c *CropperWidget) MouseMoved(e *desktop.MouseEvent) {
	c.moveTo(e.Position)
}

// MouseOut ends the gesture, like leaving the image while the button is held.
func (c *CropperWidget) MouseOut() {
	c.state.EndDrag()
}

// Cursor
func (c *CropperWidget) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

func (c *CropperWidget) moveTo(pos fyne.Position) {
	if !c.state.Drag().Active {
		return
	}
	f := c.imageFrame()
	c.state.UpdateDrag(c.relative(pos, f), crop.Size{Width: float64(f.size.Width), Height: float64(f.size.Height)})
}

// toImageSpace converts a widget position to image-relative pixels and
// reports whether it lies on the image.
func (c *CropperWidget) toImageSpace(pos fyne.Position) (crop.Point, bool) {
	f := c.imageFrame()
	if f.size.Width <= 0 || f.size.Height <= 0 {
		return crop.Point{}, false
	}
	p := c.relative(pos, f)
	inside := p.X >= 0 && p.Y >= 0 && p.X <= float64(f.size.Width) && p.Y <= float64(f.size.Height)
	return p, inside
}

func (c *CropperWidget) relative(pos fyne.Position, f frame) crop.Point {
	return crop.Point{
		X: float64(pos.X - f.origin.X),
		Y: float64(pos.Y - f.origin.Y),
	}
}

// imageFrame computes the contained image bounds (x, y, w, h) inside the widget.
func (c *CropperWidget) imageFrame() frame {
	img := c.state.Image()
	wBound := c.Size().Width
	hBound := c.Size().Height

	if img == nil || wBound == 0 || hBound == 0 {
		return frame{}
	}

	imgW := float32(img.Meta.NaturalWidth)
	imgH := float32(img.Meta.NaturalHeight)
	aspect := imgW / imgH

	viewAspect := wBound / hBound

	var drawW, drawH float32
	var offX, offY float32

	if viewAspect > aspect {
		// View is wider: Fit Height
		drawH = hBound
		drawW = drawH * aspect
		offX = (wBound - drawW) / 2
	} else {
		// View is taller: Fit Width
		drawW = wBound
		drawH = drawW / aspect
		offY = (hBound - drawH) / 2
	}

	return frame{
		origin: fyne.NewPos(offX, offY),
		size:   fyne.NewSize(drawW, drawH),
	}
}

// --- Renderer ---

type cropperRenderer struct {
	cropper *CropperWidget
	objects []fyne.CanvasObject
}

func (r *cropperRenderer) Layout(s fyne.Size) {
	r.objects[0].Resize(s)
	r.objects[0].Move(fyne.NewPos(0, 0))
	r.layoutSelection()
}

func (r *cropperRenderer) MinSize() fyne.Size {
	return fyne.NewSize(constants.CropperMinWidth, constants.CropperMinHeight)
}

func (r *cropperRenderer) Refresh() {
	r.layoutSelection()
	canvas.Refresh(r.cropper)
}

func (r *cropperRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *cropperRenderer) Destroy() {}

// layoutSelection places the crop box from the state. Typed-in values are not
// clamped, so the box may extend past the image.
func (r *cropperRenderer) layoutSelection() {
	c := r.cropper
	rect := c.state.Rect()
	if !c.state.Loaded() || (rect.Width <= 0 && rect.Height <= 0) {
		c.selection.Hide()
		return
	}

	f := c.imageFrame()
	c.selection.Move(f.origin.Add(fyne.NewPos(float32(rect.X), float32(rect.Y))))
	c.selection.Resize(fyne.NewSize(float32(max(0, rect.Width)), float32(max(0, rect.Height))))
	c.selection.Show()
}
