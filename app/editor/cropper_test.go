package editor

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ConserveLee/gui-cropper/internal/crop"
)

func testImage(w, h int) *crop.Image {
	return crop.NewImage(image.NewRGBA(image.Rect(0, 0, w, h)), "test.png", "image/png")
}

func press(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

// newLetterboxed returns a cropper showing an 800x600 image in a 500x300
// widget: the image is drawn 400x300 starting 50px from the left.
func newLetterboxed(t *testing.T) (*CropperWidget, *crop.State) {
	t.Helper()
	test.NewTempApp(t)

	state := crop.NewState()
	state.Load(testImage(800, 600))
	c := NewCropperWidget(state)
	c.Resize(fyne.NewSize(500, 300))
	return c, state
}

func TestImageFrame(t *testing.T) {
	c, _ := newLetterboxed(t)

	f := c.imageFrame()
	assert.Equal(t, fyne.NewPos(50, 0), f.origin)
	assert.Equal(t, fyne.NewSize(400, 300), f.size)
	assert.Equal(t, crop.Size{Width: 400, Height: 300}, c.DisplayedSize())

	// Taller than the image: centred vertically
	c.Resize(fyne.NewSize(400, 500))
	f = c.imageFrame()
	assert.Equal(t, fyne.NewPos(0, 100), f.origin)
	assert.Equal(t, fyne.NewSize(400, 300), f.size)
}

func TestImageFrameWithoutImage(t *testing.T) {
	test.NewTempApp(t)
	c := NewCropperWidget(crop.NewState())
	c.Resize(fyne.NewSize(500, 300))

	assert.True(t, c.DisplayedSize().Empty())
}

func TestDragSelectsInImageSpace(t *testing.T) {
	c, state := newLetterboxed(t)

	c.MouseDown(press(100, 50))
	assert.Equal(t, crop.Point{X: 50, Y: 50}, state.Drag().Anchor)

	c.Dragged(drag(250, 150))
	assert.Equal(t, crop.Rect{X: 50, Y: 50, Width: 150, Height: 100}, state.Rect())

	c.DragEnd()
	assert.False(t, state.Drag().Active)

	// Moves after release change nothing
	c.MouseMoved(press(300, 200))
	assert.Equal(t, crop.Rect{X: 50, Y: 50, Width: 150, Height: 100}, state.Rect())
}

func TestDragIsClampedToImage(t *testing.T) {
	c, state := newLetterboxed(t)

	c.MouseDown(press(100, 50))
	c.Dragged(drag(600, 400))

	assert.Equal(t, crop.Rect{X: 50, Y: 50, Width: 350, Height: 250}, state.Rect())

	c.Dragged(drag(0, -40))
	assert.Equal(t, crop.Rect{X: 0, Y: 0, Width: 50, Height: 50}, state.Rect())
}

func TestPressOutsideImageIsIgnored(t *testing.T) {
	c, state := newLetterboxed(t)

	c.MouseDown(press(20, 100)) // left letterbox band
	assert.False(t, state.Drag().Active)
	assert.True(t, state.Rect().IsZero())

	c.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)},
		Button:     desktop.MouseButtonSecondary,
	})
	assert.False(t, state.Drag().Active)
}

func TestPressWithoutImageIsIgnored(t *testing.T) {
	test.NewTempApp(t)
	state := crop.NewState()
	c := NewCropperWidget(state)
	c.Resize(fyne.NewSize(400, 300))

	c.MouseDown(press(10, 10))
	assert.False(t, state.Drag().Active)
}

func TestMouseUpAndOutEndDrag(t *testing.T) {
	c, state := newLetterboxed(t)

	c.MouseDown(press(100, 50))
	c.MouseUp(press(100, 50))
	assert.False(t, state.Drag().Active)

	c.MouseDown(press(100, 50))
	c.MouseMoved(press(150, 80))
	assert.Equal(t, crop.Rect{X: 50, Y: 50, Width: 50, Height: 30}, state.Rect())
	c.MouseOut()
	assert.False(t, state.Drag().Active)
}

func TestSelectionOverlay(t *testing.T) {
	c, state := newLetterboxed(t)
	test.WidgetRenderer(c) // build the renderer

	c.Refresh()
	assert.False(t, c.selection.Visible())

	c.MouseDown(press(100, 50))
	c.Dragged(drag(200, 150))
	c.Refresh()

	assert.True(t, c.selection.Visible())
	assert.Equal(t, fyne.NewPos(100, 50), c.selection.Position())
	assert.Equal(t, fyne.NewSize(100, 100), c.selection.Size())

	// A negative typed height still draws with zero height
	state.SetField(crop.FieldHeight, "-20")
	c.Refresh()
	assert.True(t, c.selection.Visible())
	assert.Equal(t, fyne.NewSize(100, 0), c.selection.Size())
}

func TestCursorIsCrosshair(t *testing.T) {
	test.NewTempApp(t)
	c := NewCropperWidget(crop.NewState())
	assert.Equal(t, desktop.CrosshairCursor, c.Cursor())
}
