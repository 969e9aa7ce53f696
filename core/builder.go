package core

import (
	"fmt"
	"io"

	"github.com/sarchlab/akita/v4/sim"
)

// DefaultTapeSize is the number of cells on a tape unless WithTapeSize is
// used. The data pointer starts in the middle of the tape.
const DefaultTapeSize = 1024

// MaxTapeSize is the largest tape a builder accepts.
const MaxTapeSize = 1 << 30

// Builder can create new interpreters and cores.
type Builder struct {
	engine   sim.Engine
	freq     sim.Freq
	tapeSize int
	input    Input
	output   io.Writer
}

// NewBuilder returns a builder with the default tape size.
func NewBuilder() Builder {
	return Builder{
		freq:     1 * sim.GHz,
		tapeSize: DefaultTapeSize,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithTapeSize sets the number of cells on the tape.
func (b Builder) WithTapeSize(size int) Builder {
	if size < 1 {
		panic("tape needs at least one cell")
	}
	if size > MaxTapeSize {
		panic(fmt.Sprintf("tape size %d exceeds %d cells", size, MaxTapeSize))
	}
	b.tapeSize = size
	return b
}

// WithInput sets where read instructions take their bytes from. Without an
// input every read is a no-op.
func (b Builder) WithInput(input Input) Builder {
	b.input = input
	return b
}

// WithOutput sets where write instructions emit their bytes. Without an
// output written bytes are dropped.
func (b Builder) WithOutput(output io.Writer) Builder {
	b.output = output
	return b
}

func (b Builder) newState() coreState {
	return coreState{
		Tape:   make([]byte, b.tapeSize),
		Ptr:    b.tapeSize / 2,
		input:  b.input,
		output: b.output,
	}
}

// BuildInterpreter creates a tree-walking interpreter.
func (b Builder) BuildInterpreter() *Interpreter {
	return &Interpreter{state: b.newState()}
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.engine == nil {
		panic("core needs an engine")
	}

	c := &Core{state: b.newState()}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	return c
}
