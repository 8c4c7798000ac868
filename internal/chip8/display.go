package chip8

import "fmt"

// clearScreen zeroes the entire framebuffer.
func (s *System) clearScreen() {
	s.screen = [ScreenWidth * ScreenHeight]byte{}
}

// drawSprite XORs a sprite of the given height in rows onto the
// framebuffer. Sprite rows are read from memory starting at the index
// register, one byte per row with bit 7 as the leftmost pixel. Coordinates
// wrap around both screen edges independently, drawing is toroidal. The
// sprite source range is validated up front: a sprite reaching outside of
// memory fails the cycle with no rows drawn. The collision flag VF is
// never written.
func (s *System) drawSprite(x, y, height uint8) error {
	if int(s.i)+int(height) > MemorySize {
		return fmt.Errorf("%w: sprite read at $%04X with height %d",
			ErrMemoryFault, s.i, height)
	}

	for row := uint8(0); row < height; row++ {
		spriteByte := s.memory[s.i+uint16(row)]

		for col := uint8(0); col < 8; col++ {
			pixel := (spriteByte >> (7 - col)) & 1
			sx := (uint16(x) + uint16(col)) % ScreenWidth
			sy := (uint16(y) + uint16(row)) % ScreenHeight
			s.screen[sy*ScreenWidth+sx] ^= pixel
		}
	}

	return nil
}
