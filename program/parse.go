package program

import (
	"errors"
	"fmt"

	"github.com/sarchlab/bfsim/lexer"
)

var (
	// ErrUnmatchedLoopEnd is matched by a ParseError for a ']' with no open '['.
	ErrUnmatchedLoopEnd = errors.New("unmatched loop-end")

	// ErrUnmatchedLoopStart is matched by a ParseError for a '[' that is never
	// closed.
	ErrUnmatchedLoopStart = errors.New("unmatched loop-start")
)

// ParseError reports an unbalanced bracket. Pos is the index of the offending
// op code in the lexed sequence.
type ParseError struct {
	Kind error
	Pos  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at position %d", e.Kind, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// Parse builds the instruction tree. Matched brackets collapse into Loop
// instructions; the first unbalanced bracket aborts the parse.
func Parse(ops []lexer.OpCode) (Program, error) {
	return parseSpan(ops, 0)
}

// Compile lexes and parses src.
func Compile(src string) (Program, error) {
	return Parse(lexer.Lex(src))
}

// parseSpan parses ops, which starts at index base of the full sequence.
func parseSpan(ops []lexer.OpCode, base int) (Program, error) {
	code := Program{}
	loopBegin := 0
	depth := 0

	for i, op := range ops {
		if depth == 0 {
			switch op {
			case lexer.LoopStart:
				loopBegin = i
				depth++
			case lexer.LoopEnd:
				return nil, &ParseError{Kind: ErrUnmatchedLoopEnd, Pos: base + i}
			default:
				inst, _ := Plain(op)
				code = append(code, inst)
			}
			continue
		}

		switch op {
		case lexer.LoopStart:
			depth++
		case lexer.LoopEnd:
			depth--
			if depth > 0 {
				continue
			}

			body, err := parseSpan(ops[loopBegin+1:i], base+loopBegin+1)
			if err != nil {
				return nil, err
			}
			code = append(code, NewLoop(body...))
		}
	}

	if depth != 0 {
		return nil, &ParseError{Kind: ErrUnmatchedLoopStart, Pos: base + loopBegin}
	}

	return code, nil
}
