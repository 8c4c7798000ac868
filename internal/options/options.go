// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
}

// Flags contains behavior options.
type Flags struct {
	Cycles   uint64 `flag:"cycles" usage:"stop after this many cycles (0: run until the display closes)"`
	ClockHz  int    `flag:"hz" usage:"instructions to execute per second" default:"700"`
	Scale    int    `flag:"scale" usage:"pixel scale factor of the display window" default:"10"`
	Headless bool   `flag:"headless" usage:"run without opening a display window"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
	Version  bool   `flag:"version" usage:"show version and exit"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}
