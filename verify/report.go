package verify

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/bfsim/lexer"
)

// VerificationReport summarises a program and its lint findings.
type VerificationReport struct {
	OpCount   int
	LoopCount int
	MaxDepth  int
	Issues    []Issue
}

// GenerateReport lints ops and collects simple shape statistics.
func GenerateReport(ops []lexer.OpCode) *VerificationReport {
	report := &VerificationReport{
		OpCount: len(ops),
		Issues:  RunLint(ops),
	}

	depth := 0
	for _, op := range ops {
		switch op {
		case lexer.LoopStart:
			report.LoopCount++
			depth++
			report.MaxDepth = max(report.MaxDepth, depth)
		case lexer.LoopEnd:
			if depth > 0 {
				depth--
			}
		}
	}

	return report
}

// OK reports whether the program can be parsed.
func (r *VerificationReport) OK() bool {
	return !HasErrors(r.Issues)
}

// WriteReport writes a formatted report to a writer.
func (r *VerificationReport) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "ops: %d, loops: %d, max depth: %d\n",
		r.OpCount, r.LoopCount, r.MaxDepth)

	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "no lint issues found")
		return
	}

	t := table.NewWriter()
	t.SetTitle("Lint issues (%d)", len(r.Issues))
	t.AppendHeader(table.Row{"Type", "Pos", "Message"})
	for _, issue := range r.Issues {
		t.AppendRow(table.Row{issue.Type, issue.Pos, issue.Message})
	}

	fmt.Fprintln(w, t.Render())
}

// SaveReportToFile saves the report to a file.
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
