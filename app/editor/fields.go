package editor

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ConserveLee/gui-cropper/internal/crop"
)

// coordFields keeps four entries in step with the crop rectangle. Edits flow
// to onEdit; state changes flow back through sync.
type coordFields struct {
	entries map[string]*widget.Entry
	onEdit  func(name, raw string)

	syncing bool
	editing string // field whose text is being typed, left as the user wrote it
}

func newCoordFields(onEdit func(name, raw string)) *coordFields {
	f := &coordFields{
		entries: make(map[string]*widget.Entry, len(crop.Fields)),
		onEdit:  onEdit,
	}
	for _, name := range crop.Fields {
		name := name
		entry := widget.NewEntry()
		entry.SetText("0")
		entry.OnChanged = func(text string) {
			if f.syncing {
				return
			}
			f.editing = name
			f.onEdit(name, text)
			f.editing = ""
		}
		f.entries[name] = entry
	}
	return f
}

// sync writes the rounded rectangle into every entry except the one being typed in.
func (f *coordFields) sync(r crop.Rect) {
	f.syncing = true
	defer func() { f.syncing = false }()

	values := map[string]float64{
		crop.FieldX:      r.X,
		crop.FieldY:      r.Y,
		crop.FieldWidth:  r.Width,
		crop.FieldHeight: r.Height,
	}
	for name, entry := range f.entries {
		if name == f.editing {
			continue
		}
		text := strconv.Itoa(crop.Round(values[name]))
		if entry.Text != text {
			entry.SetText(text)
		}
	}
}

// text returns the current text of a field.
func (f *coordFields) text(name string) string {
	if e, ok := f.entries[name]; ok {
		return e.Text
	}
	return ""
}

func (f *coordFields) layout() fyne.CanvasObject {
	return container.NewGridWithColumns(4,
		widget.NewLabel("X:"), f.entries[crop.FieldX],
		widget.NewLabel("Y:"), f.entries[crop.FieldY],
		widget.NewLabel("Width:"), f.entries[crop.FieldWidth],
		widget.NewLabel("Height:"), f.entries[crop.FieldHeight],
	)
}
