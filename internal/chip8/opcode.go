package chip8

import "fmt"

// Opcode is a single 16 bit CHIP-8 instruction word, assembled big endian
// from two consecutive memory bytes. Operand fields occupy fixed bit
// positions: the high nibble selects the instruction family, the X and Y
// register indexes sit in bits 11-8 and 7-4, the low nibble holds the N
// operand. The low byte doubles as the NN immediate and the low 12 bits as
// the NNN address, depending on the instruction family.
type Opcode uint16

// Family returns the high nibble that selects the instruction family.
func (op Opcode) Family() uint8 {
	return uint8(op >> 12)
}

// X returns the first register index operand, always in [0, 15].
func (op Opcode) X() uint8 {
	return uint8((op & 0x0F00) >> 8)
}

// Y returns the second register index operand, always in [0, 15].
func (op Opcode) Y() uint8 {
	return uint8((op & 0x00F0) >> 4)
}

// N returns the low nibble operand.
func (op Opcode) N() uint8 {
	return uint8(op & 0x000F)
}

// NN returns the immediate byte operand.
func (op Opcode) NN() uint8 {
	return uint8(op & 0x00FF)
}

// Addr returns the 12 bit address operand.
func (op Opcode) Addr() uint16 {
	return uint16(op & 0x0FFF)
}

// String returns the instruction word in assembler notation.
func (op Opcode) String() string {
	return fmt.Sprintf("$%04X", uint16(op))
}
