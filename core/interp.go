package core

import "github.com/sarchlab/bfsim/program"

// Interpreter runs a program by walking its instruction tree recursively.
type Interpreter struct {
	state coreState
	emu   instEmulator
}

// Run executes prog to completion. It only returns early on a TapeFault or an
// output write failure.
func (it *Interpreter) Run(prog program.Program) error {
	return it.run(prog)
}

func (it *Interpreter) run(insts []program.Instruction) error {
	for _, inst := range insts {
		if inst.Kind != program.Loop {
			traceInst(inst, &it.state)
			if err := it.emu.RunInst(inst, &it.state); err != nil {
				return err
			}
			continue
		}

		for {
			again, err := it.state.guard()
			if err != nil {
				return err
			}
			if !again {
				break
			}

			if err := it.run(inst.Body); err != nil {
				return err
			}
		}
	}

	return nil
}

// Snapshot copies the current tape and pointer.
func (it *Interpreter) Snapshot() Snapshot {
	return snapshotOf(&it.state)
}
