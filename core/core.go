package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfsim/program"
)

// frame is one instruction sequence being walked. Loop frames re-check their
// guard cell each time the body is exhausted.
type frame struct {
	body []program.Instruction
	pc   int
	loop bool
}

// Core is a simulated tape machine that executes one instruction per cycle.
// The walk is the same as Interpreter's, with the recursion kept in an
// explicit frame stack so that it can be suspended between ticks.
type Core struct {
	*sim.TickingComponent

	state  coreState
	emu    instEmulator
	frames []frame
	steps  uint64
	err    error
}

// MapProgram sets the program that the core needs to run and rewinds it to
// the first instruction. The tape is left as it is.
func (c *Core) MapProgram(prog program.Program) {
	c.frames = []frame{{body: prog}}
	c.steps = 0
	c.err = nil
}

// Tick runs the program for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.Done() {
		return false
	}

	if err := c.step(); err != nil {
		c.err = err
		c.frames = nil
		Trace("Core",
			"Behavior", "Fault",
			"Name", c.Name(),
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"Error", err.Error(),
		)
		return false
	}

	return true
}

func (c *Core) step() error {
	top := &c.frames[len(c.frames)-1]

	if top.pc == len(top.body) {
		if top.loop {
			again, err := c.state.guard()
			if err != nil {
				return err
			}
			if again {
				top.pc = 0
				return nil
			}
		}

		c.frames = c.frames[:len(c.frames)-1]
		return nil
	}

	inst := top.body[top.pc]
	top.pc++
	c.steps++

	if inst.Kind != program.Loop {
		traceInst(inst, &c.state)
		return c.emu.RunInst(inst, &c.state)
	}

	enter, err := c.state.guard()
	if err != nil {
		return err
	}
	if enter {
		c.frames = append(c.frames, frame{body: inst.Body, loop: true})
	}

	return nil
}

// Done reports whether the program has finished or faulted.
func (c *Core) Done() bool {
	return len(c.frames) == 0
}

// Err returns the fault that stopped the core, if any.
func (c *Core) Err() error {
	return c.err
}

// Steps returns the number of instructions executed, loops included.
func (c *Core) Steps() uint64 {
	return c.steps
}

// Snapshot copies the current tape and pointer.
func (c *Core) Snapshot() Snapshot {
	return snapshotOf(&c.state)
}
