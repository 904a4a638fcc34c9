package console

import (
	"context"
	"fmt"
	"io"

	"github.com/abhisek/examgate/internal/batch"
	"github.com/abhisek/examgate/internal/exam"
)

// Judge reads the batch format (a count line, then one "<s|l> score..." line
// per examinee) from r and writes the pass count to w as a bare integer.
// Malformed lines are skipped by the evaluator and do not affect the count.
func Judge(ctx context.Context, r io.Reader, w io.Writer, cfg exam.Config, ev *batch.Evaluator) (*batch.Report, error) {
	lines, err := batch.ReadLines(r)
	if err != nil {
		return nil, err
	}
	rep, err := ev.Run(ctx, cfg, lines)
	if err != nil {
		return rep, err
	}
	if _, err := fmt.Fprintln(w, rep.Passed); err != nil {
		return rep, fmt.Errorf("write result: %w", err)
	}
	return rep, nil
}
