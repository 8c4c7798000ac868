// Package emulator drives a CHIP-8 system and renders its output.
package emulator

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// framesPerSecond is the display refresh rate.
const framesPerSecond = 60

// Result contains the final state of an emulation run.
type Result struct {
	Cycles  uint64 // executed cycles
	Skipped uint64 // cycles that hit an unsupported instruction
	PC      uint16 // final program counter
}

// Emulator connects a CHIP-8 system to a display output.
type Emulator struct {
	logger *log.Logger
	sys    *chip8.System
	output display.Output
}

// New creates an emulator that renders to the given output.
func New(logger *log.Logger, output display.Output) *Emulator {
	return &Emulator{
		logger: logger,
		sys:    chip8.New(logger),
		output: output,
	}
}

// Run loads the ROM file and executes it until the cycle budget is reached,
// the context got cancelled or the display output got closed.
func (e *Emulator) Run(ctx context.Context, opts options.Program) (Result, error) {
	program, err := loader.New().Load(opts)
	if err != nil {
		return Result{}, fmt.Errorf("loading ROM: %w", err)
	}

	e.sys.Reset()
	if err := e.sys.LoadProgram(program); err != nil {
		return Result{}, fmt.Errorf("loading program: %w", err)
	}

	e.logger.Info("Starting emulation",
		log.String("rom", opts.Input),
		log.Int("size", len(program)),
		log.Int("hz", opts.ClockHz))

	if err := e.output.Start(); err != nil {
		return Result{}, fmt.Errorf("starting display: %w", err)
	}
	defer func() { _ = e.output.Close() }()

	err = e.loop(ctx, opts)

	return Result{
		Cycles:  e.sys.Cycles(),
		Skipped: e.sys.Skipped(),
		PC:      e.sys.PC(),
	}, err
}

// loop paces the emulation at the display refresh rate, executing a batch
// of cycles before presenting each frame.
func (e *Emulator) loop(ctx context.Context, opts options.Program) error {
	cyclesPerFrame := uint64(opts.ClockHz / framesPerSecond)
	if cyclesPerFrame == 0 {
		cyclesPerFrame = 1
	}

	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()

	frame := make([]byte, len(e.sys.Framebuffer()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-e.output.Done():
			return nil

		case <-ticker.C:
			done, err := e.runFrame(cyclesPerFrame, opts)

			copy(frame, e.sys.Framebuffer())
			e.output.Present(frame)

			if err != nil || done {
				return err
			}
		}
	}
}

// runFrame executes one frame worth of cycles, stopping early when the
// cycle budget is exhausted.
func (e *Emulator) runFrame(cycles uint64, opts options.Program) (bool, error) {
	for range cycles {
		if opts.Cycles > 0 && e.sys.Cycles() >= opts.Cycles {
			return true, nil
		}

		if opts.Trace {
			e.traceStep()
		}

		if err := e.sys.Step(); err != nil {
			return true, fmt.Errorf("executing cycle %d: %w", e.sys.Cycles(), err)
		}
	}

	return opts.Cycles > 0 && e.sys.Cycles() >= opts.Cycles, nil
}

// traceStep logs the instruction that the next step will execute.
func (e *Emulator) traceStep() {
	word, err := e.sys.CurrentOpcode()
	if err != nil {
		return
	}

	e.logger.Debug("executing",
		log.Hex("address", e.sys.PC()),
		log.String("instruction", chip8.Decode(word).String()))
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}
