package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Step executes one machine cycle: it fetches the instruction word at the
// program counter, decodes it and applies its semantics. Every instruction
// either assigns the program counter an absolute address or advances it by
// exactly 2 or 4 bytes. Odd program counter values are accepted fetch
// targets, instruction alignment is not enforced. On a memory fault the
// machine state is left unchanged and the cycle does not count as executed.
func (s *System) Step() error {
	word, err := s.fetch()
	if err != nil {
		return err
	}

	if err := s.execute(Decode(word)); err != nil {
		return err
	}

	s.cycles++
	return nil
}

// CurrentOpcode returns the instruction word at the program counter without
// executing it.
func (s *System) CurrentOpcode() (Opcode, error) {
	return s.fetch()
}

// fetch reads the 16 bit instruction word at the program counter, high byte
// first.
func (s *System) fetch() (Opcode, error) {
	high, err := s.readByte(s.pc)
	if err != nil {
		return 0, fmt.Errorf("instruction fetch: %w", err)
	}
	low, err := s.readByte(s.pc + 1)
	if err != nil {
		return 0, fmt.Errorf("instruction fetch: %w", err)
	}

	return Opcode(uint16(high)<<8 | uint16(low)), nil
}

// execute applies the semantics of one decoded instruction and updates the
// program counter.
func (s *System) execute(ins Instruction) error {
	switch ins := ins.(type) {
	case Clear:
		s.clearScreen()
		s.pc += 2

	case Jump:
		s.pc = ins.Addr

	case SkipEqual:
		if s.v[ins.X] == ins.Value {
			s.pc += 4
		} else {
			s.pc += 2
		}

	case Load:
		s.v[ins.X] = ins.Value
		s.pc += 2

	case Add:
		s.v[ins.X] += ins.Value
		s.pc += 2

	case LoadIndex:
		s.i = ins.Addr
		s.pc += 2

	case Draw:
		if err := s.drawSprite(s.v[ins.X], s.v[ins.Y], ins.Height); err != nil {
			return err
		}
		s.pc += 2

	case Unimplemented:
		s.logger.Debug("skipping unimplemented instruction",
			log.String("instruction", ins.String()),
			log.Hex("address", s.pc))
		s.skipped++
		s.pc += 2

	case Unknown:
		s.logger.Debug("skipping unrecognized instruction",
			log.String("instruction", ins.String()),
			log.Hex("address", s.pc))
		s.skipped++
		s.pc += 2

	default:
		return fmt.Errorf("unhandled instruction %s", ins)
	}

	return nil
}
