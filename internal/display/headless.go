package display

import (
	"sync"
	"sync/atomic"
)

// Headless discards all frames, it is used for test runs and
// running with a cycle budget on machines without a display.
type Headless struct {
	frames atomic.Uint64
	done   chan struct{}
	once   sync.Once
}

var _ Output = &Headless{}

// NewHeadless creates an output that discards all frames.
func NewHeadless() *Headless {
	return &Headless{
		done: make(chan struct{}),
	}
}

// Start implements the Output interface.
func (h *Headless) Start() error {
	return nil
}

// Present counts the frame and discards it.
func (h *Headless) Present(_ []byte) {
	h.frames.Add(1)
}

// Frames returns the number of presented frames.
func (h *Headless) Frames() uint64 {
	return h.frames.Load()
}

// Done returns a channel that is closed once the output got closed.
func (h *Headless) Done() <-chan struct{} {
	return h.done
}

// Close stops the output.
func (h *Headless) Close() error {
	h.once.Do(func() {
		close(h.done)
	})
	return nil
}
