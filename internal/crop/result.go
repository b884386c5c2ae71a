package crop

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// OriginalImage is the metadata part of a Result.
type OriginalImage struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Coordinates is a rounded rectangle in displayed-image pixels.
type Coordinates struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Result is the record emitted by Apply. The crop coordinates stay in
// displayed space; only the preview is drawn in natural space.
type Result struct {
	OriginalImage OriginalImage `json:"originalImage"`
	Crop          Coordinates   `json:"cropCoordinatesOnDisplayedImage"`
}

// NewResult rounds r and combines it with the image metadata.
func NewResult(meta ImageMetadata, r Rect) Result {
	return Result{
		OriginalImage: OriginalImage{
			Name:   meta.Name,
			Type:   meta.MimeType,
			Width:  meta.NaturalWidth,
			Height: meta.NaturalHeight,
		},
		Crop: Coordinates{
			X:      Round(r.X),
			Y:      Round(r.Y),
			Width:  Round(r.Width),
			Height: Round(r.Height),
		},
	}
}

// JSON renders the record with two-space indentation.
func (r Result) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal crop result: %w", err)
	}
	return b, nil
}

// String returns the indented JSON form, suitable for display.
func (r Result) String() string {
	b, err := r.JSON()
	if err != nil {
		return err.Error()
	}
	return string(b)
}

// Compact returns the single-line JSON form, used for log lines.
func (r Result) Compact() string {
	b, err := json.Marshal(r)
	if err != nil {
		return err.Error()
	}
	return string(b)
}

// MarshalLogObject writes the record with the same keys as its JSON form.
func (r Result) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("originalImage", r.OriginalImage); err != nil {
		return err
	}
	return enc.AddObject("cropCoordinatesOnDisplayedImage", r.Crop)
}

func (o OriginalImage) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", o.Name)
	enc.AddString("type", o.Type)
	enc.AddInt("width", o.Width)
	enc.AddInt("height", o.Height)
	return nil
}

func (c Coordinates) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("x", c.X)
	enc.AddInt("y", c.Y)
	enc.AddInt("width", c.Width)
	enc.AddInt("height", c.Height)
	return nil
}
