package display

import (
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/log"
)

// pixel colors of the monochrome display
var (
	colorOn  = []byte{0xFF, 0xFF, 0xFF, 0xFF}
	colorOff = []byte{0x00, 0x00, 0x00, 0xFF}
)

// Window displays frames in a desktop window.
type Window struct {
	logger *log.Logger
	title  string
	width  int
	height int
	scale  int

	mu     sync.RWMutex
	rgba   []byte
	window *ebiten.Image

	done chan struct{}
	once sync.Once
}

var _ Output = &Window{}

// NewWindow creates a window output that scales every pixel by the
// given factor.
func NewWindow(logger *log.Logger, title string, width, height, scale int) *Window {
	return &Window{
		logger: logger,
		title:  title,
		width:  width,
		height: height,
		scale:  scale,
		rgba:   make([]byte, width*height*4),
		done:   make(chan struct{}),
	}
}

// Start opens the window and runs the render loop in the background.
func (w *Window) Start() error {
	ebiten.SetWindowSize(w.width*w.scale, w.height*w.scale)
	ebiten.SetWindowTitle(w.title)

	go func() {
		defer w.stop()

		if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
			w.logger.Error("Rendering failed", log.Err(err))
		}
	}()

	return nil
}

// Present converts the monochrome frame to RGBA for the next draw.
func (w *Window) Present(frame []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()

	pixels := min(len(frame), w.width*w.height)
	for i := range pixels {
		c := colorOff
		if frame[i] != 0 {
			c = colorOn
		}
		copy(w.rgba[i*4:], c)
	}
}

// Done returns a channel that is closed once the window got closed.
func (w *Window) Done() <-chan struct{} {
	return w.done
}

// Close stops the render loop, the window closes on the next update.
func (w *Window) Close() error {
	w.stop()
	return nil
}

func (w *Window) stop() {
	w.once.Do(func() {
		close(w.done)
	})
}

// Update implements the ebiten game loop, it only checks for shutdown.
func (w *Window) Update() error {
	select {
	case <-w.done:
		return ebiten.Termination
	default:
		return nil
	}
}

// Draw copies the current frame to the screen.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.window == nil {
		w.window = ebiten.NewImage(w.width, w.height)
	}

	w.mu.RLock()
	w.window.WritePixels(w.rgba)
	w.mu.RUnlock()

	screen.DrawImage(w.window, nil)
}

// Layout returns the logical screen size, ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}
