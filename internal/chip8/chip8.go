// Package chip8 implements a CHIP-8 virtual machine.
// It models the complete architectural state of the interpreter and executes
// one instruction per step, using a mask based decoder over the instruction
// set tables and an XOR sprite compositor for the 64x32 pixel display.
package chip8

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter area, reserved and unused by this machine
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	// Program images are loaded at address 0x200 in the machine's memory space.
	ProgramStart = 0x200

	// MemorySize is the total amount of addressable memory (4KB).
	MemorySize = 4096

	// MaxProgramSize is the largest program image that fits into the user
	// program space.
	MaxProgramSize = MemorySize - ProgramStart

	// ScreenWidth is the display width in pixels.
	ScreenWidth = 64

	// ScreenHeight is the display height in pixels.
	ScreenHeight = 32
)

var (
	// ErrProgramTooLarge is returned when a program image exceeds the user
	// program space.
	ErrProgramTooLarge = errors.New("program exceeds available memory")

	// ErrMemoryFault is returned when an instruction accesses memory outside
	// of the 4KB address space.
	ErrMemoryFault = errors.New("memory access out of range")
)

// System is a single CHIP-8 machine instance holding the complete
// architectural state: 4KB of memory, the 16 general purpose 8-bit registers
// V0-VF, the 16-bit index register I, the program counter and the
// framebuffer. A step is one atomic unit of execution with no intermediate
// observable state. The state is not synchronized, concurrent sessions need
// separate instances.
type System struct {
	logger *log.Logger

	memory [MemorySize]byte
	v      [16]uint8
	i      uint16
	pc     uint16
	screen [ScreenWidth * ScreenHeight]byte

	rng *rand.Rand // seeded at reset, reserved for the random number instruction family

	cycles  uint64
	skipped uint64
}

// New creates a new machine in reset state. The logger receives a debug
// event for every recognized but inert instruction that gets executed.
func New(logger *log.Logger) *System {
	sys := &System{
		logger: logger,
	}
	sys.Reset()
	return sys
}

// Reset restores the power-on state: all general purpose registers, the
// index register and the framebuffer are zeroed, the program counter points
// to ProgramStart and the random number generator is reseeded from the wall
// clock. Memory contents are left in place, LoadProgram replaces the program
// image. Reset can be called any number of times.
func (s *System) Reset() {
	s.v = [16]uint8{}
	s.i = 0
	s.pc = ProgramStart
	s.screen = [ScreenWidth * ScreenHeight]byte{}
	s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	s.cycles = 0
	s.skipped = 0
}

// LoadProgram copies a program image into the user program space at
// ProgramStart and resets the program counter to it. Images larger than
// MaxProgramSize are rejected before any memory is written. Registers and
// the framebuffer keep their current values, call Reset for a full power
// cycle.
func (s *System) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes do not fit into the %d byte program space",
			ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	copy(s.memory[ProgramStart:], program)
	s.pc = ProgramStart
	return nil
}

// Framebuffer returns the display memory, one byte per pixel with value 0
// or 1, in row-major order. The returned slice aliases the machine state
// and is only valid to read.
func (s *System) Framebuffer() []byte {
	return s.screen[:]
}

// Width returns the display width in pixels.
func (s *System) Width() int {
	return ScreenWidth
}

// Height returns the display height in pixels.
func (s *System) Height() int {
	return ScreenHeight
}

// PC returns the current program counter.
func (s *System) PC() uint16 {
	return s.pc
}

// Index returns the current value of the index register I.
func (s *System) Index() uint16 {
	return s.i
}

// Register returns the value of register Vx. Only the low nibble of x is
// used.
func (s *System) Register(x uint8) uint8 {
	return s.v[x&0x0F]
}

// Cycles returns the number of steps executed since the last reset.
func (s *System) Cycles() uint64 {
	return s.cycles
}

// Skipped returns how many recognized but inert instructions were executed
// since the last reset.
func (s *System) Skipped() uint64 {
	return s.skipped
}

// readByte returns the memory byte at addr, failing with a memory fault for
// addresses outside of the 4KB address space instead of reading out of
// range.
func (s *System) readByte(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, fmt.Errorf("%w: read at $%04X", ErrMemoryFault, addr)
	}
	return s.memory[addr], nil
}
