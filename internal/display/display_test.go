package display

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestHeadless(t *testing.T) {
	out := NewHeadless()
	assert.NoError(t, out.Start())

	out.Present(make([]byte, 64*32))
	out.Present(make([]byte, 64*32))
	assert.Equal(t, uint64(2), out.Frames())

	select {
	case <-out.Done():
		t.Fatal("output reported done before close")
	default:
	}

	assert.NoError(t, out.Close())
	assert.NoError(t, out.Close())

	select {
	case <-out.Done():
	default:
		t.Fatal("output not done after close")
	}
}

func TestWindow_Present(t *testing.T) {
	win := NewWindow(log.NewTestLogger(t), "test", 2, 2, 1)
	win.Present([]byte{1, 0, 0, 1})

	expected := []byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0xFF,
		0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	assert.Equal(t, expected, win.rgba)
}

func TestWindow_Close(t *testing.T) {
	win := NewWindow(log.NewTestLogger(t), "test", 64, 32, 10)

	assert.NoError(t, win.Close())
	assert.NoError(t, win.Close())

	select {
	case <-win.Done():
	default:
		t.Fatal("window not done after close")
	}
}
