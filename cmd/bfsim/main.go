// Command bfsim runs a tape-machine program from a source file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfsim/config"
	"github.com/sarchlab/bfsim/core"
	"github.com/sarchlab/bfsim/lexer"
	"github.com/sarchlab/bfsim/program"
	"github.com/sarchlab/bfsim/verify"
	"github.com/tebeka/atexit"
)

// CLI holds the command-line arguments.
type CLI struct {
	File    string `arg:"" name:"file" type:"path" help:"Program source file."`
	Tape    int    `default:"${defaultTape}" help:"Number of tape cells (at most ${maxTape})."`
	Engine  string `enum:"walk,tick" default:"walk" help:"Execution engine: walk or tick."`
	Trace   string `type:"path" placeholder:"FILE" help:"Write a JSON instruction trace to FILE."`
	Dump    bool   `help:"Print the tape around the pointer when the program ends."`
	Lint    bool   `help:"Lint the program before running it."`
	Monitor bool   `help:"Start the akita monitor (tick engine only)."`
}

func (c *CLI) validate() error {
	if c.Tape < 1 || c.Tape > core.MaxTapeSize {
		return fmt.Errorf("tape size must be between 1 and %d, got %d",
			core.MaxTapeSize, c.Tape)
	}
	if c.Monitor && c.Engine != "tick" {
		return fmt.Errorf("--monitor needs --engine=tick")
	}
	return nil
}

// exitRequest is raised by kong's exit hook so that help output ends the
// parse without leaving the process.
type exitRequest int

// parseArgs fills a CLI from args. exited is true when kong asked to stop,
// as it does after printing help.
func parseArgs(args []string, stdout, stderr io.Writer) (cli CLI, exited bool, err error) {
	parser, err := kong.New(&cli,
		kong.Name("bfsim"),
		kong.Description("Run a tape-machine program from a source file."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitRequest(code)) }),
		kong.Vars{
			"defaultTape": strconv.Itoa(core.DefaultTapeSize),
			"maxTape":     strconv.Itoa(core.MaxTapeSize),
		},
	)
	if err != nil {
		return cli, false, err
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		code, ok := r.(exitRequest)
		if !ok {
			panic(r)
		}
		exited = true
		if code != 0 {
			err = fmt.Errorf("exit status %d", int(code))
		}
	}()

	if _, err := parser.Parse(args); err != nil {
		return cli, false, err
	}

	return cli, false, cli.validate()
}

// closeTrace flushes and closes the trace file.
func closeTrace(f *os.File) error {
	return errors.Join(f.Sync(), f.Close())
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	opts, exited, err := parseArgs(args, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "bfsim:", err)
		return 2
	}
	if exited {
		return 0
	}

	src, err := os.ReadFile(opts.File)
	if err != nil {
		fmt.Fprintln(stderr, "bfsim:", err)
		return 1
	}

	if opts.Trace != "" {
		traceFile, err := os.Create(opts.Trace)
		if err != nil {
			fmt.Fprintln(stderr, "bfsim:", err)
			return 1
		}
		defer func() {
			if err := closeTrace(traceFile); err != nil {
				fmt.Fprintln(stderr, "bfsim: trace:", err)
				if code == 0 {
					code = 1
				}
			}
		}()

		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(traceFile, &slog.HandlerOptions{
			Level: core.LevelTrace,
		})))
		defer slog.SetDefault(prev)
	}

	ops := lexer.Lex(string(src))

	if opts.Lint {
		report := verify.GenerateReport(ops)
		report.WriteReport(stderr)
		if !report.OK() {
			return 1
		}
	}

	prog, err := program.Parse(ops)
	if err != nil {
		fmt.Fprintf(stderr, "bfsim: %s: %v\n", opts.File, err)
		return 1
	}

	input := core.NewByteInput(stdin)

	var snap core.Snapshot
	if opts.Engine == "walk" {
		it := core.NewBuilder().
			WithTapeSize(opts.Tape).
			WithInput(input).
			WithOutput(stdout).
			BuildInterpreter()
		err = it.Run(prog)
		snap = it.Snapshot()
	} else {
		b := config.MachineBuilder{}.
			WithEngine(sim.NewSerialEngine()).
			WithFreq(1 * sim.GHz).
			WithTapeSize(opts.Tape).
			WithInput(input).
			WithOutput(stdout)
		var monitor *monitoring.Monitor
		if opts.Monitor {
			monitor = monitoring.NewMonitor()
			b = b.WithMonitor(monitor)
		}

		m := b.Build("Machine")
		m.Load(prog)
		if monitor != nil {
			monitor.StartServer()
		}
		err = m.Run()
		snap = m.Core().Snapshot()
	}

	if opts.Dump {
		fmt.Fprintln(stderr, core.RenderTape(snap, 8))
	}
	core.LogState(snap)

	if err != nil {
		fmt.Fprintln(stderr, "bfsim:", err)
		return 1
	}

	return 0
}

func main() {
	atexit.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
