// Package config assembles a simulated tape machine from its parts.
package config

import (
	"io"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfsim/core"
	"github.com/sarchlab/bfsim/program"
)

// MachineBuilder can build machines.
type MachineBuilder struct {
	engine   sim.Engine
	freq     sim.Freq
	monitor  *monitoring.Monitor
	tapeSize int
	input    core.Input
	output   io.Writer
}

// WithEngine sets the engine that drives the machine simulation.
func (b MachineBuilder) WithEngine(engine sim.Engine) MachineBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the machine.
func (b MachineBuilder) WithFreq(freq sim.Freq) MachineBuilder {
	b.freq = freq
	return b
}

// WithMonitor sets the monitor that monitors the machine.
func (b MachineBuilder) WithMonitor(monitor *monitoring.Monitor) MachineBuilder {
	b.monitor = monitor
	return b
}

// WithTapeSize sets the number of tape cells.
func (b MachineBuilder) WithTapeSize(size int) MachineBuilder {
	b.tapeSize = size
	return b
}

// WithInput sets the byte source of read instructions.
func (b MachineBuilder) WithInput(input core.Input) MachineBuilder {
	b.input = input
	return b
}

// WithOutput sets the destination of write instructions.
func (b MachineBuilder) WithOutput(output io.Writer) MachineBuilder {
	b.output = output
	return b
}

// Build creates a machine. A serial engine is created when none is given.
func (b MachineBuilder) Build(name string) *Machine {
	engine := b.engine
	if engine == nil {
		engine = sim.NewSerialEngine()
	}

	cb := core.NewBuilder().
		WithEngine(engine).
		WithInput(b.input).
		WithOutput(b.output)
	if b.freq != 0 {
		cb = cb.WithFreq(b.freq)
	}
	if b.tapeSize != 0 {
		cb = cb.WithTapeSize(b.tapeSize)
	}

	m := &Machine{
		Name:   name,
		engine: engine,
		core:   cb.Build(name + ".Core"),
	}

	if b.monitor != nil {
		b.monitor.RegisterEngine(engine)
		b.monitor.RegisterComponent(m.core)
	}

	return m
}

// A Machine is one tape machine driven by a simulation engine.
type Machine struct {
	Name string

	engine sim.Engine
	core   *core.Core
}

// Core returns the core that runs programs.
func (m *Machine) Core() *core.Core {
	return m.core
}

// Load maps prog onto the core.
func (m *Machine) Load(prog program.Program) {
	m.core.MapProgram(prog)
}

// Run ticks the core until the loaded program finishes. It returns the fault
// that stopped the program, if any.
func (m *Machine) Run() error {
	m.core.TickNow()

	if err := m.engine.Run(); err != nil {
		return err
	}

	return m.core.Err()
}
