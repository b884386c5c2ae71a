package logview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

type logPanel struct {
	logData  binding.StringList
	logList  *widget.List
	clearBtn *widget.Button
}

// NewLogPanel creates the UI panel listing logData, scrolled to the newest line.
func NewLogPanel(logData binding.StringList) fyne.CanvasObject {
	return newLogPanel(logData).layout()
}

func newLogPanel(logData binding.StringList) *logPanel {
	p := &logPanel{logData: logData}

	p.logList = widget.NewListWithData(
		logData,
		func() fyne.CanvasObject { return widget.NewLabel("Log entry template") },
		func(i binding.DataItem, o fyne.CanvasObject) { o.(*widget.Label).Bind(i.(binding.String)) },
	)

	// Auto-scroll
	logData.AddListener(binding.NewDataListener(func() {
		list, _ := logData.Get()
		if len(list) > 0 {
			p.logList.ScrollToBottom()
		}
	}))

	p.clearBtn = widget.NewButton("Clear", func() {
		_ = logData.Set(nil)
	})
	return p
}

func (p *logPanel) layout() fyne.CanvasObject {
	controls := container.NewBorder(nil, nil, widget.NewLabel("Log:"), p.clearBtn)
	return container.NewBorder(controls, nil, nil, nil, p.logList)
}
