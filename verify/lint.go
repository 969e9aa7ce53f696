// Package verify provides static checks of programs before they run.
//
// RunLint never stops at the first problem. Unlike the parser it reports
// every unbalanced bracket, together with constructs that are legal but
// usually a mistake:
//
//   - STRUCT: unmatched loop-start or loop-end (the parser rejects these)
//   - HANG: an empty loop "[]", which never ends once entered
//   - DEAD: a loop reached before any cell is changed, so its guard is
//     always zero on a fresh tape (often used as a comment block)
package verify

import (
	"fmt"
	"sort"

	"github.com/sarchlab/bfsim/lexer"
)

// IssueType classifies lint findings.
type IssueType string

const (
	IssueStruct IssueType = "STRUCT"
	IssueHang   IssueType = "HANG"
	IssueDead   IssueType = "DEAD"
)

// Issue is a single lint finding. Pos is an index into the lexed op codes.
type Issue struct {
	Type    IssueType
	Pos     int
	Message string
}

// RunLint checks ops and returns the issues found, ordered by position.
func RunLint(ops []lexer.OpCode) []Issue {
	var issues []Issue
	var open []int
	touched := false

	for i, op := range ops {
		switch op {
		case lexer.Inc, lexer.Dec, lexer.Read:
			// Inside a loop these only run if the loop was entered, which
			// needs an earlier top-level change.
			if len(open) == 0 {
				touched = true
			}
		case lexer.LoopStart:
			if !touched && len(open) == 0 {
				issues = append(issues, Issue{
					Type:    IssueDead,
					Pos:     i,
					Message: "loop never runs: no cell has been changed yet",
				})
			}
			open = append(open, i)
		case lexer.LoopEnd:
			if len(open) == 0 {
				issues = append(issues, Issue{
					Type:    IssueStruct,
					Pos:     i,
					Message: "unmatched loop-end",
				})
				continue
			}

			start := open[len(open)-1]
			open = open[:len(open)-1]
			if start == i-1 {
				issues = append(issues, Issue{
					Type:    IssueHang,
					Pos:     start,
					Message: "empty loop never ends if its cell is nonzero",
				})
			}
		}
	}

	for _, start := range open {
		issues = append(issues, Issue{
			Type:    IssueStruct,
			Pos:     start,
			Message: "unmatched loop-start",
		})
	}

	sort.SliceStable(issues, func(a, b int) bool {
		return issues[a].Pos < issues[b].Pos
	})

	return issues
}

// HasErrors reports whether any issue would stop the program from parsing.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Type == IssueStruct {
			return true
		}
	}
	return false
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] position %d: %s", i.Type, i.Pos, i.Message)
}
