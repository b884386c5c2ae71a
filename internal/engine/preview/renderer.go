package preview

import (
	"image"

	"github.com/ConserveLee/gui-cropper/internal/crop"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Renderer draws the current crop into a fixed-size square buffer.
// The crop is stretched to fill the buffer; its aspect ratio is not kept.
type Renderer struct {
	size   int
	buf    *image.RGBA
	scaler draw.Transformer
	count  int
}

// New creates a renderer with a size x size buffer.
func New(size int) *Renderer {
	return &Renderer{
		size:   size,
		buf:    image.NewRGBA(image.Rect(0, 0, size, size)),
		scaler: draw.BiLinear,
	}
}

// Buffer returns the destination buffer. It is reused between renders.
func (r *Renderer) Buffer() *image.RGBA {
	return r.buf
}

// Count returns how many times the buffer has been redrawn.
func (r *Renderer) Count() int {
	return r.count
}

// Render clears the buffer and draws rect, given in displayed pixels, from the
// natural-resolution image. It returns false without touching the buffer when
// there is no image, the rectangle has no positive width, or the displayed
// size is unknown.
func (r *Renderer) Render(img *crop.Image, rect crop.Rect, displayed crop.Size) bool {
	if img == nil || img.Source == nil || rect.Width <= 0 || displayed.Empty() {
		return false
	}

	bounds := r.buf.Bounds()
	draw.Draw(r.buf, bounds, image.Transparent, image.Point{}, draw.Src)
	r.count++

	src := crop.ToNatural(rect, displayed, img.Meta.Natural())
	if src.Height < 0 {
		src.Y += src.Height
		src.Height = -src.Height
	}
	if src.Width <= 0 || src.Height <= 0 {
		return true
	}

	// Map the float source rectangle onto the whole buffer. Anything outside
	// the image itself is left transparent.
	kx := float64(bounds.Dx()) / src.Width
	ky := float64(bounds.Dy()) / src.Height
	origin := img.Source.Bounds().Min
	s2d := f64.Aff3{
		kx, 0, -(src.X + float64(origin.X)) * kx,
		0, ky, -(src.Y + float64(origin.Y)) * ky,
	}
	r.scaler.Transform(r.buf, s2d, img.Source, img.Source.Bounds(), draw.Over, nil)
	return true
}
