package core

import (
	"fmt"
	"io"

	"github.com/sarchlab/bfsim/program"
)

type coreState struct {
	Tape []byte
	Ptr  int

	input  Input
	output io.Writer
}

// cell returns the cell under the data pointer, or a TapeFault when the
// pointer has left the tape.
func (s *coreState) cell() (*byte, error) {
	if s.Ptr < 0 || s.Ptr >= len(s.Tape) {
		return nil, &TapeFault{Ptr: s.Ptr, Size: len(s.Tape)}
	}
	return &s.Tape[s.Ptr], nil
}

// guard reports whether a loop should run another iteration.
func (s *coreState) guard() (bool, error) {
	c, err := s.cell()
	if err != nil {
		return false, err
	}
	return *c != 0, nil
}

type instEmulator struct {
}

// RunInst executes a single non-structural instruction. Loops are driven by
// the caller.
func (i instEmulator) RunInst(inst program.Instruction, state *coreState) error {
	switch inst.Kind {
	case program.IncPtr:
		state.Ptr++
		return nil
	case program.DecPtr:
		state.Ptr--
		return nil
	case program.Loop:
		panic("loop instructions are driven by the caller")
	}

	c, err := state.cell()
	if err != nil {
		return err
	}

	switch inst.Kind {
	case program.Inc:
		*c++
	case program.Dec:
		*c--
	case program.Write:
		return i.runWrite(*c, state)
	case program.Read:
		i.runRead(c, state)
	default:
		panic(fmt.Sprintf("unknown instruction kind %d", inst.Kind))
	}

	return nil
}

func (i instEmulator) runWrite(value byte, state *coreState) error {
	if state.output == nil {
		return nil
	}

	_, err := state.output.Write([]byte{value})
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// runRead leaves the cell untouched when no byte can be obtained. End of input
// and a failing reader are treated the same way.
func (i instEmulator) runRead(c *byte, state *coreState) {
	if state.input == nil {
		return
	}

	b, err := state.input.ReadByte()
	if err != nil {
		Trace("Input",
			"Behavior", "Unavailable",
			"Ptr", state.Ptr,
			"Error", err.Error(),
		)
		return
	}

	*c = b
}
