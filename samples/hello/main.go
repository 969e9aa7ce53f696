package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfsim/config"
	"github.com/sarchlab/bfsim/core"
	"github.com/sarchlab/bfsim/program"
	"github.com/tebeka/atexit"
)

//go:embed hello.b
var helloKernel string

func main() {
	engine := sim.NewSerialEngine()

	machine := config.MachineBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithOutput(os.Stdout).
		Build("Machine")

	prog, err := program.Compile(helloKernel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	machine.Load(prog)
	if err := machine.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	fmt.Println(core.RenderTape(machine.Core().Snapshot(), 4))
	fmt.Printf("%d instructions in %.0f cycles\n",
		machine.Core().Steps(), float64(engine.CurrentTime()*1e9))

	atexit.Exit(0)
}
