package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOpcode_Fields(t *testing.T) {
	tests := []struct {
		name   string
		word   Opcode
		family uint8
		x      uint8
		y      uint8
		n      uint8
		nn     uint8
		addr   uint16
	}{
		{
			name:   "draw",
			word:   0xD235,
			family: 0xD,
			x:      2,
			y:      3,
			n:      5,
			nn:     0x35,
			addr:   0x235,
		},
		{
			name:   "load immediate",
			word:   0x6234,
			family: 0x6,
			x:      2,
			y:      3,
			n:      4,
			nn:     0x34,
			addr:   0x234,
		},
		{
			name:   "all bits set in payload",
			word:   0x1FFF,
			family: 0x1,
			x:      0xF,
			y:      0xF,
			n:      0xF,
			nn:     0xFF,
			addr:   0xFFF,
		},
		{
			name:   "zero word",
			word:   0x0000,
			family: 0,
			x:      0,
			y:      0,
			n:      0,
			nn:     0,
			addr:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.family, tt.word.Family())
			assert.Equal(t, tt.x, tt.word.X())
			assert.Equal(t, tt.y, tt.word.Y())
			assert.Equal(t, tt.n, tt.word.N())
			assert.Equal(t, tt.nn, tt.word.NN())
			assert.Equal(t, tt.addr, tt.word.Addr())
		})
	}
}

func TestOpcode_String(t *testing.T) {
	assert.Equal(t, "$00E0", Opcode(0x00E0).String())
	assert.Equal(t, "$1FFF", Opcode(0x1FFF).String())
	assert.Equal(t, "$D235", Opcode(0xD235).String())
}
