// Package lexer turns program text into the eight command op codes.
package lexer

import "fmt"

// OpCode is a single recognised command.
type OpCode uint8

// Op codes, in source-character order.
const (
	IncPtr    OpCode = iota // >
	DecPtr                  // <
	Inc                     // +
	Dec                     // -
	Write                   // .
	Read                    // ,
	LoopStart               // [
	LoopEnd                 // ]
)

var names = [...]string{
	IncPtr:    "incptr",
	DecPtr:    "decptr",
	Inc:       "inc",
	Dec:       "dec",
	Write:     "write",
	Read:      "read",
	LoopStart: "loopstart",
	LoopEnd:   "loopend",
}

const symbols = "><+-.,[]"

func (op OpCode) String() string {
	if int(op) < len(names) {
		return names[op]
	}
	return fmt.Sprintf("opcode(%d)", int(op))
}

// Symbol returns the source character of the op code.
func (op OpCode) Symbol() byte {
	if int(op) < len(symbols) {
		return symbols[op]
	}
	return '?'
}
