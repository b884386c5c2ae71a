package source

import (
	"fmt"
	"sync"

	"github.com/ConserveLee/gui-cropper/internal/crop"
)

// Loader decodes selected files off the UI goroutine and hands the result
// back through Dispatch. When several loads overlap, only the most recently
// requested one is delivered; older completions are dropped.
type Loader struct {
	Allowed []string // allowed MIME types, empty allows all

	// Dispatch runs fn on the UI goroutine (fyne.Do in the app).
	Dispatch func(fn func())
	// OnLoad receives every accepted image.
	OnLoad func(img *crop.Image)
	// OnError receives decode and type failures.
	OnError func(name string, err error)
	// DebugFunc receives dropped-load notices.
	DebugFunc func(format string, args ...interface{})

	mu  sync.Mutex
	gen uint64
	wg  sync.WaitGroup
}

// NewLoader creates a loader. A nil dispatch runs callbacks on the decoding goroutine.
func NewLoader(allowed []string, dispatch func(func()), onLoad func(*crop.Image), onError func(string, error)) *Loader {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Loader{
		Allowed:   allowed,
		Dispatch:  dispatch,
		OnLoad:    onLoad,
		OnError:   onError,
		DebugFunc: func(string, ...interface{}) {},
	}
}

// Load starts decoding data. The name and type are taken at selection time
// and travel with the request. It returns the request's generation, or 0 when
// the request was rejected before decoding.
func (l *Loader) Load(data []byte, name, mimeType string) uint64 {
	mimeType = DetectType(data, mimeType)
	if !Allowed(mimeType, l.Allowed) {
		l.fail(name, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType))
		return 0
	}

	gen := l.next()
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := Decode(data, name, mimeType)
		l.Dispatch(func() { l.complete(gen, name, img, err) })
	}()
	return gen
}

// Deliver hands over an image that needs no decoding, such as a screen capture.
// It supersedes any load still in flight.
func (l *Loader) Deliver(img *crop.Image) {
	if img == nil {
		return
	}
	gen := l.next()
	l.complete(gen, img.Meta.Name, img, nil)
}

// Wait blocks until every started decode has finished and been dispatched.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) next() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	return l.gen
}

func (l *Loader) current() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

func (l *Loader) complete(gen uint64, name string, img *crop.Image, err error) {
	if gen != l.current() {
		l.DebugFunc("Dropped stale load of %s (request %d)", name, gen)
		return
	}
	if err != nil {
		l.fail(name, err)
		return
	}
	if l.OnLoad != nil {
		l.OnLoad(img)
	}
}

func (l *Loader) fail(name string, err error) {
	if l.OnError != nil {
		l.OnError(name, err)
	}
}
