package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ConserveLee/gui-cropper/internal/crop"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp" // Register WebP; imaging registers the other formats
)

// ErrEmpty is returned when there is nothing to decode.
var ErrEmpty = errors.New("empty image data")

// ErrUnsupportedType is returned for a MIME type outside the allowed list.
var ErrUnsupportedType = errors.New("unsupported image type")

// DetectType returns declared when it names an image type, otherwise the
// type sniffed from data.
func DetectType(data []byte, declared string) string {
	if strings.HasPrefix(strings.ToLower(declared), "image/") {
		return declared
	}
	return mimetype.Detect(data).String()
}

// Decode turns raw file bytes into an Image. EXIF orientation is applied so
// the natural size matches what the user sees.
func Decode(data []byte, name, mimeType string) (*crop.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("failed to decode %s: image has no pixels", name)
	}

	return crop.NewImage(img, name, DetectType(data, mimeType)), nil
}

// LoadFile reads and decodes an image from the filesystem.
func LoadFile(path string) (*crop.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, filepath.Base(path), "")
}

// Allowed reports whether mimeType is in the allow list. Parameters such as
// "; charset=binary" are ignored. An empty list allows everything.
func Allowed(mimeType string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	base, _, _ := strings.Cut(mimeType, ";")
	base = strings.TrimSpace(strings.ToLower(base))
	for _, a := range allowed {
		if base == strings.ToLower(a) {
			return true
		}
	}
	return false
}
