package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/bfsim/program"
)

// LevelTrace sits below Debug so that per-instruction records are only
// emitted when a handler asks for them.
const LevelTrace slog.Level = slog.LevelDebug - 4

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

func traceInst(inst program.Instruction, state *coreState) {
	if !slog.Default().Enabled(context.Background(), LevelTrace) {
		return
	}

	Trace("Inst",
		"Kind", inst.Kind.String(),
		"Ptr", state.Ptr,
	)
}

// Snapshot is a copy of a tape and its data pointer.
type Snapshot struct {
	Tape []byte
	Ptr  int
}

func snapshotOf(state *coreState) Snapshot {
	tape := make([]byte, len(state.Tape))
	copy(tape, state.Tape)
	return Snapshot{Tape: tape, Ptr: state.Ptr}
}

// Cell returns the value under the pointer. ok is false when the pointer is
// off the tape.
func (s Snapshot) Cell() (value byte, ok bool) {
	if s.Ptr < 0 || s.Ptr >= len(s.Tape) {
		return 0, false
	}
	return s.Tape[s.Ptr], true
}

// RenderTape renders the cells within radius of the pointer as a table.
func RenderTape(s Snapshot, radius int) string {
	t := table.NewWriter()
	t.SetTitle("Tape (ptr %d, size %d)", s.Ptr, len(s.Tape))
	t.AppendHeader(table.Row{"", "Cell", "Dec", "Hex", "Chr"})

	lo := max(0, min(s.Ptr, len(s.Tape)-1)-radius)
	hi := min(len(s.Tape)-1, max(s.Ptr, 0)+radius)

	for i := lo; i <= hi; i++ {
		mark := ""
		if i == s.Ptr {
			mark = ">"
		}

		v := s.Tape[i]
		chr := "."
		if v >= 0x20 && v < 0x7f {
			chr = string(rune(v))
		}

		t.AppendRow(table.Row{mark, i, v, fmt.Sprintf("%02x", v), chr})
	}

	return t.Render()
}

func LogState(s Snapshot) {
	v, ok := s.Cell()
	slog.Debug("StateCheckpoint",
		"Ptr", s.Ptr,
		"Cell", v,
		"InBounds", ok,
		"TapeSize", len(s.Tape),
	)
}
