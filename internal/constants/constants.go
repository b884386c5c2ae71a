package constants

// Window
const (
	AppTitle     = "Go Image Cropper"
	WindowWidth  = 1000 // Default window width
	WindowHeight = 700  // Default window height
)

// Cropper
const (
	PreviewSize       = 200 // Preview canvas is a PreviewSize x PreviewSize square
	CropperMinWidth   = 320 // Minimum on-screen size of the image area
	CropperMinHeight  = 240
	SelectionStrokePx = 2 // Crop box stroke width
)

// Logging
const (
	MaxLogLines     = 100 // Lines kept in the in-window log
	DefaultLogLevel = "info"
)

// Loader
var (
	// AllowedTypes are the MIME types accepted by the file dialog and loader.
	AllowedTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp", "image/bmp", "image/tiff"}
	// AllowedExtensions filter the open dialog.
	AllowedExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
)
