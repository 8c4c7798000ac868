package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction is the decoded form of an instruction word. The set of
// variants is closed, one per instruction family the machine distinguishes,
// so that execution can switch over it exhaustively.
type Instruction interface {
	fmt.Stringer

	isInstruction()
}

// Clear zeroes the entire framebuffer (00E0).
type Clear struct{}

// Jump sets the program counter to an absolute address (1NNN).
type Jump struct {
	Addr uint16
}

// SkipEqual advances over the next instruction if Vx equals an immediate
// byte (3XNN).
type SkipEqual struct {
	X     uint8
	Value uint8
}

// Load stores an immediate byte into Vx (6XNN).
type Load struct {
	X     uint8
	Value uint8
}

// Add adds an immediate byte to Vx, wrapping modulo 256 without recording
// a carry (7XNN).
type Add struct {
	X     uint8
	Value uint8
}

// LoadIndex sets the index register I to an absolute address (ANNN).
type LoadIndex struct {
	Addr uint16
}

// Draw XORs a sprite of Height rows read from memory at I onto the
// framebuffer at the coordinates held in Vx and Vy (DXYN).
type Draw struct {
	X      uint8
	Y      uint8
	Height uint8
}

// Unimplemented is an instruction the decoder recognizes but the machine
// executes as a plain no-op that only advances the program counter:
// subroutine calls and returns, the remaining skip variants, the ALU,
// random, key and timer families.
type Unimplemented struct {
	Word Opcode
	Ins  *chip8.Instruction
}

// Unknown is an instruction word that matches no known bit pattern,
// including 0NNN machine code routine calls.
type Unknown struct {
	Word Opcode
}

func (Clear) isInstruction()         {}
func (Jump) isInstruction()          {}
func (SkipEqual) isInstruction()     {}
func (Load) isInstruction()          {}
func (Add) isInstruction()           {}
func (LoadIndex) isInstruction()     {}
func (Draw) isInstruction()          {}
func (Unimplemented) isInstruction() {}
func (Unknown) isInstruction()       {}

// Decode classifies an instruction word. Classification follows the
// hardware rule: the high nibble selects the instruction family and the
// remaining bits disambiguate within it, expressed through the mask and
// value pairs of the opcode tables. Recognized families outside the
// executed subset decode to Unimplemented, words without any table match
// to Unknown.
func Decode(word Opcode) Instruction {
	w := uint16(word)

	for _, op := range chip8.Opcodes[word.Family()] {
		if op.Info.Mask&w != op.Info.Value || op.Instruction == nil {
			continue
		}
		return newInstruction(word, op.Instruction)
	}

	return Unknown{Word: word}
}

// newInstruction maps a matched opcode table entry to its decoded variant.
// The tables describe the complete CHIP-8 instruction set while several
// mnemonics cover multiple encodings, so the executed variants are pinned
// to their exact family: ld covers 6XNN, ANNN, 8XY0 and the FX transfers,
// but only the first two have machine semantics here.
func newInstruction(word Opcode, ins *chip8.Instruction) Instruction {
	switch {
	case ins == chip8.ClsInst:
		return Clear{}
	case ins == chip8.JpInst && word.Family() == 0x1:
		return Jump{Addr: word.Addr()}
	case ins == chip8.SeInst && word.Family() == 0x3:
		return SkipEqual{X: word.X(), Value: word.NN()}
	case ins == chip8.LdInst && word.Family() == 0x6:
		return Load{X: word.X(), Value: word.NN()}
	case ins == chip8.AddInst && word.Family() == 0x7:
		return Add{X: word.X(), Value: word.NN()}
	case ins == chip8.LdInst && word.Family() == 0xA:
		return LoadIndex{Addr: word.Addr()}
	case ins == chip8.DrwInst:
		return Draw{X: word.X(), Y: word.Y(), Height: word.N()}
	default:
		return Unimplemented{Word: word, Ins: ins}
	}
}

// String returns the instruction in assembler notation.
func (Clear) String() string {
	return chip8.ClsInst.Name
}

// String returns the instruction in assembler notation.
func (j Jump) String() string {
	return fmt.Sprintf("%s $%03X", chip8.JpInst.Name, j.Addr)
}

// String returns the instruction in assembler notation.
func (se SkipEqual) String() string {
	return fmt.Sprintf("%s V%X, $%02X", chip8.SeInst.Name, se.X, se.Value)
}

// String returns the instruction in assembler notation.
func (l Load) String() string {
	return fmt.Sprintf("%s V%X, $%02X", chip8.LdInst.Name, l.X, l.Value)
}

// String returns the instruction in assembler notation.
func (a Add) String() string {
	return fmt.Sprintf("%s V%X, $%02X", chip8.AddInst.Name, a.X, a.Value)
}

// String returns the instruction in assembler notation.
func (l LoadIndex) String() string {
	return fmt.Sprintf("%s I, $%03X", chip8.LdInst.Name, l.Addr)
}

// String returns the instruction in assembler notation.
func (d Draw) String() string {
	return fmt.Sprintf("%s V%X, V%X, $%X", chip8.DrwInst.Name, d.X, d.Y, d.Height)
}

// String returns the mnemonic of the recognized instruction and its raw
// instruction word.
func (u Unimplemented) String() string {
	return fmt.Sprintf("%s %s", u.Ins.Name, u.Word)
}

// String returns the raw instruction word.
func (u Unknown) String() string {
	return fmt.Sprintf("??? %s", u.Word)
}
