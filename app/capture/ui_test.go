package capture

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ConserveLee/gui-cropper/internal/engine/screen"
)

func TestDisplayOptions(t *testing.T) {
	assert.Equal(t, []string{"Display 0 (Default)"}, displayOptions(nil))

	displays := []screen.Display{
		{Index: 0, Bounds: image.Rect(0, 0, 1920, 1080)},
		{Index: 1, Bounds: image.Rect(1920, 0, 3200, 1024)},
	}
	assert.Equal(t, []string{
		"Display 0 (1920x1080)",
		"Display 1 (1280x1024)",
	}, displayOptions(displays))
}

func TestDefaultOptionParses(t *testing.T) {
	id, err := screen.ParseDisplayLabel(displayOptions(nil)[0])
	assert.NoError(t, err)
	assert.Equal(t, 0, id)
}
