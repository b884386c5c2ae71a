package screen

import (
	"fmt"
	"image"

	"github.com/ConserveLee/gui-cropper/internal/crop"
	"github.com/go-vgo/robotgo"
	"github.com/kbinani/screenshot"
)

// Display describes one active monitor.
type Display struct {
	Index  int
	Bounds image.Rectangle
}

// Label is the text shown in the display selector.
func (d Display) Label() string {
	return fmt.Sprintf("Display %d (%dx%d)", d.Index, d.Bounds.Dx(), d.Bounds.Dy())
}

// ParseDisplayLabel extracts the index from a Label string.
func ParseDisplayLabel(label string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(label, "Display %d", &id); err != nil {
		return 0, fmt.Errorf("invalid display label %q: %w", label, err)
	}
	return id, nil
}

// Capturer grabs a monitor as a source image for the cropper.
type Capturer struct {
	DisplayIndex int
}

// NewCapturer creates a capturer for the main display.
func NewCapturer() *Capturer {
	return &Capturer{
		DisplayIndex: 0, // Default to main display
	}
}

// SetDisplayID sets the display index used by Capture.
func (c *Capturer) SetDisplayID(index int) {
	c.DisplayIndex = index
}

// Displays lists the active displays.
func (c *Capturer) Displays() []Display {
	n := screenshot.NumActiveDisplays()
	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		displays = append(displays, Display{Index: i, Bounds: screenshot.GetDisplayBounds(i)})
	}
	return displays
}

// Origin returns the top-left corner of the selected display in virtual
// desktop coordinates.
func (c *Capturer) Origin() image.Point {
	x, y, _, _ := robotgo.GetDisplayBounds(c.DisplayIndex)
	return image.Point{X: x, Y: y}
}

// Capture takes a screenshot of the selected display.
func (c *Capturer) Capture() (*crop.Image, error) {
	bounds := screenshot.GetDisplayBounds(c.DisplayIndex)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screen %d: %w", c.DisplayIndex, err)
	}
	captured := crop.NewImage(img, CaptureName(c.DisplayIndex), "image/png")
	origin := c.Origin()
	captured.Origin = &origin
	return captured, nil
}

// CaptureName is the file name given to a capture of display id.
func CaptureName(id int) string {
	return fmt.Sprintf("display-%d.png", id)
}
