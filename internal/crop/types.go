package crop

import (
	"image"

	"github.com/google/uuid"
)

// Point is a position in displayed-image pixels, relative to the image's top-left corner.
type Point struct {
	X float64
	Y float64
}

// Size is the rendered width and height of the image on screen.
type Size struct {
	Width  float64
	Height float64
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is the crop rectangle in displayed-image pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// IsZero reports whether r is the reset rectangle {0,0,0,0}.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// ImageMetadata describes a loaded image. It is replaced wholesale on every load.
type ImageMetadata struct {
	NaturalWidth  int
	NaturalHeight int
	Name          string
	MimeType      string
}

// Natural returns the intrinsic pixel size as a Size.
func (m ImageMetadata) Natural() Size {
	return Size{Width: float64(m.NaturalWidth), Height: float64(m.NaturalHeight)}
}

// Image is a decoded image together with its metadata.
// ID changes on every load, even when the same file is opened twice.
type Image struct {
	ID     uuid.UUID
	Source image.Image
	Meta   ImageMetadata
	Origin *image.Point // virtual desktop position of a screen capture, nil for files
}

// NewImage wraps a decoded image, taking the natural size from its bounds.
func NewImage(src image.Image, name, mimeType string) *Image {
	b := src.Bounds()
	return &Image{
		ID:     uuid.New(),
		Source: src,
		Meta: ImageMetadata{
			NaturalWidth:  b.Dx(),
			NaturalHeight: b.Dy(),
			Name:          name,
			MimeType:      mimeType,
		},
	}
}

// DragSession holds the fixed corner of the rectangle while a drag gesture is in progress.
type DragSession struct {
	Active bool
	Anchor Point
}

// Field names accepted by State.SetField.
const (
	FieldX      = "x"
	FieldY      = "y"
	FieldWidth  = "width"
	FieldHeight = "height"
)

// Fields lists the editable fields in display order.
var Fields = []string{FieldX, FieldY, FieldWidth, FieldHeight}

// Change identifies what a notification is about.
type Change int

const (
	ChangeLoad   Change = iota // a new image was loaded
	ChangeRect                 // the crop rectangle was written
	ChangeResult               // a new result was produced by Apply
)

func (c Change) String() string {
	switch c {
	case ChangeLoad:
		return "load"
	case ChangeRect:
		return "rect"
	case ChangeResult:
		return "result"
	default:
		return "unknown"
	}
}

// Snapshot is the state handed to subscribers after a mutation.
type Snapshot struct {
	Change Change
	Rect   Rect
	Drag   DragSession
	Image  *Image  // nil before the first load
	Result *Result // nil until Apply succeeds
}
