// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

// ErrEmptyROM indicates that the ROM file contains no data.
var ErrEmptyROM = errors.New("ROM file contains no data")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file as a raw binary buffer and returns the program data.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file info: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyROM, opts.Input)
	}

	cart, err := cartridge.LoadBuffer(file)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	// LoadBuffer pads the buffer to a minimum PRG bank size
	data := cart.PRG
	if int64(len(data)) > info.Size() {
		data = data[:info.Size()]
	}

	return data, nil
}
