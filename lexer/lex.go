package lexer

// Lookup maps a source character to its op code. The second result is false
// for any character outside the command alphabet.
func Lookup(c rune) (OpCode, bool) {
	switch c {
	case '>':
		return IncPtr, true
	case '<':
		return DecPtr, true
	case '+':
		return Inc, true
	case '-':
		return Dec, true
	case '.':
		return Write, true
	case ',':
		return Read, true
	case '[':
		return LoopStart, true
	case ']':
		return LoopEnd, true
	}
	return 0, false
}

// Lex filters src down to its commands, in source order. Every other
// character is a comment.
func Lex(src string) []OpCode {
	ops := make([]OpCode, 0, len(src))
	for _, c := range src {
		if op, ok := Lookup(c); ok {
			ops = append(ops, op)
		}
	}
	return ops
}
