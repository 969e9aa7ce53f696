// Package program builds the executable instruction tree from op codes.
package program

import "github.com/sarchlab/bfsim/lexer"

// Kind identifies what an Instruction does.
type Kind uint8

// Instruction kinds. Loop is the only structural kind.
const (
	IncPtr Kind = iota
	DecPtr
	Inc
	Dec
	Write
	Read
	Loop
)

var kindNames = [...]string{
	IncPtr: "incptr",
	DecPtr: "decptr",
	Inc:    "inc",
	Dec:    "dec",
	Write:  "write",
	Read:   "read",
	Loop:   "loop",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Instruction is a node of the executable tree. Body is only set for Loop and
// holds the loop's instructions in order.
type Instruction struct {
	Kind Kind
	Body []Instruction
}

// Program is the top-level instruction sequence of a source file.
type Program []Instruction

// NewLoop wraps body in a Loop instruction.
func NewLoop(body ...Instruction) Instruction {
	if body == nil {
		body = []Instruction{}
	}
	return Instruction{Kind: Loop, Body: body}
}

// Plain returns the instruction for a non-structural op code.
func Plain(op lexer.OpCode) (Instruction, bool) {
	switch op {
	case lexer.IncPtr:
		return Instruction{Kind: IncPtr}, true
	case lexer.DecPtr:
		return Instruction{Kind: DecPtr}, true
	case lexer.Inc:
		return Instruction{Kind: Inc}, true
	case lexer.Dec:
		return Instruction{Kind: Dec}, true
	case lexer.Write:
		return Instruction{Kind: Write}, true
	case lexer.Read:
		return Instruction{Kind: Read}, true
	}
	return Instruction{}, false
}

// Count returns the number of instruction nodes in the tree, loops included.
func Count(insts []Instruction) int {
	n := 0
	for _, inst := range insts {
		n++
		if inst.Kind == Loop {
			n += Count(inst.Body)
		}
	}
	return n
}
