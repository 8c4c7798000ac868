package chip8

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestSystem(t *testing.T) *System {
	t.Helper()
	return New(log.NewTestLogger(t))
}

func TestNew(t *testing.T) {
	sys := newTestSystem(t)

	assert.NotNil(t, sys)
	assert.Equal(t, uint16(ProgramStart), sys.PC())
	assert.Equal(t, uint16(0), sys.Index())
	assert.Equal(t, uint64(0), sys.Cycles())

	for x := uint8(0); x < 16; x++ {
		assert.Equal(t, uint8(0), sys.Register(x))
	}
}

func TestSystem_FramebufferGeometry(t *testing.T) {
	sys := newTestSystem(t)

	assert.Equal(t, 64, sys.Width())
	assert.Equal(t, 32, sys.Height())
	assert.Len(t, sys.Framebuffer(), sys.Width()*sys.Height())

	for i, pixel := range sys.Framebuffer() {
		if pixel != 0 {
			t.Fatalf("pixel %d is not zero after creation", i)
		}
	}
}

func TestSystem_Reset(t *testing.T) {
	sys := newTestSystem(t)
	assert.NoError(t, sys.LoadProgram([]byte{0x62, 0x05, 0xA2, 0x20}))
	assert.NoError(t, sys.Step())
	assert.NoError(t, sys.Step())
	sys.screen[5] = 1

	sys.Reset()

	assert.Equal(t, uint16(ProgramStart), sys.PC())
	assert.Equal(t, uint16(0), sys.Index())
	assert.Equal(t, uint8(0), sys.Register(2))
	assert.Equal(t, uint64(0), sys.Cycles())
	assert.Equal(t, uint64(0), sys.Skipped())
	assert.Equal(t, uint8(0), sys.Framebuffer()[5])

	// the program image survives a reset
	assert.Equal(t, byte(0x62), sys.memory[ProgramStart])
}

func TestSystem_ResetIdempotent(t *testing.T) {
	sys := newTestSystem(t)

	sys.Reset()
	sys.Reset()

	assert.Equal(t, uint16(ProgramStart), sys.PC())
}

func TestSystem_LoadProgram(t *testing.T) {
	sys := newTestSystem(t)

	program := []byte{0xA2, 0x20, 0x60, 0x05}
	assert.NoError(t, sys.LoadProgram(program))

	assert.Equal(t, uint16(ProgramStart), sys.PC())
	assert.Equal(t, byte(0xA2), sys.memory[ProgramStart])
	assert.Equal(t, byte(0x05), sys.memory[ProgramStart+3])
}

func TestSystem_LoadProgramMaxSize(t *testing.T) {
	sys := newTestSystem(t)

	program := make([]byte, MaxProgramSize)
	program[0] = 0x12
	program[MaxProgramSize-1] = 0x34

	assert.NoError(t, sys.LoadProgram(program))
	assert.Equal(t, byte(0x12), sys.memory[ProgramStart])
	assert.Equal(t, byte(0x34), sys.memory[MemorySize-1])
}

func TestSystem_LoadProgramTooLarge(t *testing.T) {
	sys := newTestSystem(t)

	program := bytes.Repeat([]byte{0xFF}, MaxProgramSize+1)
	err := sys.LoadProgram(program)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrProgramTooLarge))

	// no partial copy happened
	assert.Equal(t, byte(0), sys.memory[ProgramStart])
}

func TestSystem_Register(t *testing.T) {
	sys := newTestSystem(t)
	sys.v[2] = 0xAB

	assert.Equal(t, uint8(0xAB), sys.Register(2))
	// only the low nibble of the register index is used
	assert.Equal(t, uint8(0xAB), sys.Register(0x12))
}
