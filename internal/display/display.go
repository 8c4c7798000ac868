// Package display presents emulator framebuffer contents to the user.
package display

// Output defines a display backend that the emulator renders to.
type Output interface {
	// Start initializes the output and makes it ready to accept frames.
	Start() error

	// Present hands over a new frame, one byte per pixel in row major order.
	// A zero byte is an off pixel, any other value an on pixel.
	Present(frame []byte)

	// Done returns a channel that is closed once the output stops
	// accepting frames, for example when the user closes the window.
	Done() <-chan struct{}

	// Close stops the output and releases its resources.
	Close() error
}
