package program

import (
	"strings"

	"github.com/sarchlab/bfsim/lexer"
)

var kindOps = [...]lexer.OpCode{
	IncPtr: lexer.IncPtr,
	DecPtr: lexer.DecPtr,
	Inc:    lexer.Inc,
	Dec:    lexer.Dec,
	Write:  lexer.Write,
	Read:   lexer.Read,
}

// Format renders the tree back to source text without comments.
func Format(insts []Instruction) string {
	var sb strings.Builder
	format(&sb, insts)
	return sb.String()
}

func format(sb *strings.Builder, insts []Instruction) {
	for _, inst := range insts {
		if inst.Kind == Loop {
			sb.WriteByte(lexer.LoopStart.Symbol())
			format(sb, inst.Body)
			sb.WriteByte(lexer.LoopEnd.Symbol())
			continue
		}
		sb.WriteByte(kindOps[inst.Kind].Symbol())
	}
}

func (p Program) String() string {
	return Format(p)
}
